package cmd

import (
	"fmt"
	"strings"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/export"
)

type SignupCmd struct {
	Companies SignupCompaniesCmd `cmd:"" help:"List companies to register under."`
	HR        SignupHRCmd        `cmd:"" help:"Register a new HR account."`
	Photo     SignupPhotoCmd     `cmd:"" help:"Upload a profile photo for an HR account."`
}

type SignupCompaniesCmd struct {
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

type SignupHRCmd struct {
	Name      string `help:"Full name." required:""`
	Email     string `help:"Email address." required:""`
	Password  string `help:"Password." env:"CRAFTER_SIGNUP_PASSWORD" required:""`
	CompanyID int64  `help:"Company to register under." required:""`
}

type SignupPhotoCmd struct {
	ID   int64  `arg:"" help:"HR account id."`
	Path string `arg:"" help:"Image file to upload." type:"existingfile"`
}

func (s *SignupCompaniesCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	companies, err := client.Companies(runCtx)
	if err != nil {
		return fmt.Errorf("load companies: %w", err)
	}

	format, err := ctx.ResolveFormat(s.Format)
	if err != nil {
		return err
	}
	return export.WriteCompanies(ctx.Out, companies, format, ctx.WriteOptions())
}

func (s *SignupHRCmd) Run(ctx *Context) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("email must not be blank")
	}
	if strings.TrimSpace(s.Password) == "" {
		return fmt.Errorf("password must not be blank")
	}
	if s.CompanyID <= 0 {
		return fmt.Errorf("company id must be positive")
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := client.CreateHR(runCtx, api.CreateHRRequest{
		Name:      s.Name,
		Email:     s.Email,
		Password:  s.Password,
		CompanyID: s.CompanyID,
	})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	ctx.UI.Successf("Account %d created for %s", profile.ID, profile.Email)
	ctx.UI.Infof("Log in with: crafter login <username>")
	return nil
}

func (s *SignupPhotoCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if err := client.UploadPhoto(runCtx, s.ID, s.Path); err != nil {
		return fmt.Errorf("upload photo: %w", err)
	}
	ctx.UI.Successf("Photo uploaded for account %d", s.ID)
	return nil
}
