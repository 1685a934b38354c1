package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/careercrafter/crafter/internal/models"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTSV   Format = "tsv"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// sheet is one tabular rendering; JSON output bypasses it and encodes the
// records directly.
type sheet struct {
	header []string
	rows   [][]string
}

func WriteJobs(w io.Writer, jobs []models.Job, counts map[int64]int, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, jobs)
	}

	s := sheet{header: []string{"id", "title", "department", "type", "status", "deadline", "applicants"}}
	for _, job := range jobs {
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", job.ID),
			safe(job.Title),
			safe(job.Department),
			safe(job.JobType),
			safe(job.Status),
			safe(job.ApplicationDeadline),
			fmt.Sprintf("%d", counts[job.ID]),
		})
	}
	return writeSheet(w, s, format)
}

func WriteApplications(w io.Writer, apps []models.Application, assessments map[int64]models.Assessment, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, apps)
	}

	s := sheet{header: []string{"id", "candidate", "email", "status", "applied", "assessment", "resume"}}
	output := termenv.NewOutput(w)
	for _, app := range apps {
		annotation := "-"
		if assessment, ok := assessments[app.ID]; ok {
			annotation = safe(assessment.Title)
			if annotation == "" {
				annotation = "sent"
			}
		}
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", app.ID),
			safe(app.JobSeeker.Name),
			safe(app.JobSeeker.Email),
			safe(app.Status),
			safe(app.AppliedAt),
			annotation,
			displayLink(app.JobSeeker.Resume, output, format, opts),
		})
	}
	return writeSheet(w, s, format)
}

func WriteAssessments(w io.Writer, assessments []models.Assessment, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, assessments)
	}

	s := sheet{header: []string{"id", "application", "title", "sent", "score", "completed", "link"}}
	output := termenv.NewOutput(w)
	for _, assessment := range assessments {
		score := "-"
		if assessment.Score != nil {
			score = fmt.Sprintf("%d", *assessment.Score)
		}
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", assessment.ID),
			fmt.Sprintf("%d", assessment.ApplicationID),
			safe(assessment.Title),
			safe(assessment.SentDate),
			score,
			boolString(assessment.Completed),
			displayLink(assessment.AssessmentLink, output, format, opts),
		})
	}
	return writeSheet(w, s, format)
}

func WriteInterviews(w io.Writer, interviews []models.Interview, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, interviews)
	}

	s := sheet{header: []string{"id", "candidate", "executive", "type", "details", "date", "time", "feedback"}}
	for _, interview := range interviews {
		candidate := "-"
		if interview.Application != nil {
			candidate = safe(interview.Application.JobSeeker.Name)
		}
		executive := "-"
		if interview.Executive != nil {
			executive = safe(interview.Executive.Name)
		}
		feedback := safe(interview.Feedback)
		if feedback == "" {
			feedback = "-"
		}
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", interview.ID),
			candidate,
			executive,
			safe(interview.Type),
			safe(interview.ModeDetails),
			safe(interview.Date),
			safe(interview.Time),
			feedback,
		})
	}
	return writeSheet(w, s, format)
}

func WriteExecutives(w io.Writer, executives []models.Profile, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, executives)
	}

	s := sheet{header: []string{"id", "name", "email"}}
	for _, executive := range executives {
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", executive.ID),
			safe(executive.Name),
			safe(executive.Email),
		})
	}
	return writeSheet(w, s, format)
}

func WriteCompanies(w io.Writer, companies []models.Company, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, companies)
	}

	s := sheet{header: []string{"id", "name"}}
	for _, company := range companies {
		s.rows = append(s.rows, []string{fmt.Sprintf("%d", company.ID), safe(company.Name)})
	}
	return writeSheet(w, s, format)
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeSheet(w io.Writer, s sheet, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, s, ',')
	case FormatTSV:
		return writeCSV(w, s, '\t')
	default:
		return writeTable(w, s)
	}
}

func writeCSV(w io.Writer, s sheet, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(s.header); err != nil {
		return err
	}
	for _, row := range s.rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, s sheet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(s.header, "\t"))
	for _, row := range s.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// displayLink renders a URL column: colored OSC-8 hyperlink in tables,
// plain URL everywhere else.
func displayLink(raw string, output *termenv.Output, format Format, opts WriteOptions) string {
	link := safe(raw)
	if link == "" {
		return "-"
	}
	if format != FormatTable {
		return link
	}

	display := link
	if opts.Hyperlinks {
		display = shortURLLabel(link)
	}
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(link, display)
	}
	return display
}

const linkColor = "#87CEEB"

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
