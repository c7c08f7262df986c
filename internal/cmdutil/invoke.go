package cmdutil

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/ChrisDavison/ptt/internal/config"
	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/placeholder"
	"github.com/ChrisDavison/ptt/internal/templates"
)

// InvokeOpts holds the inputs for InvokeTemplate.
type InvokeOpts struct {
	// Name is the template identifier.
	Name string
	// Fragments are the output filename fragments.
	Fragments []string
	// Flags are the parsed template flags.
	Flags *TemplateFlags
	// Config is the resolved global configuration.
	Config *config.GlobalConfig

	// Fs is the filesystem templates are read from and outputs written to.
	Fs afero.Fs
	// In supplies prompt answers; Out receives prompts and the verbose echo.
	In  io.Reader
	Out io.Writer
	// OutputDir defaults to the working directory.
	OutputDir string
}

// InvokeTemplate runs the shared preamble of the use command: it checks the
// template directory, parses --set values, resolves the date format and the
// template, then instantiates it. It returns the path written.
//
// Failures during instantiation are logged and returned as an *ExitError
// with Printed set.
func InvokeTemplate(ctx context.Context, opts InvokeOpts) (string, error) {
	if opts.Config == nil {
		return "", perrors.NewExitError(fmt.Errorf("configuration not loaded"), perrors.ExitGeneralError)
	}
	flags := opts.Flags
	if flags == nil {
		flags = &TemplateFlags{Force: true}
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	dir := opts.Config.TemplateDir()
	if err := RequireTemplateDir(fsys, dir); err != nil {
		return "", err
	}

	preset, err := placeholder.ParseAssignments(flags.Set)
	if err != nil {
		return "", err
	}

	dateFormat := opts.Config.DateFormatFor(flags.DateFormat)
	output.Debug("resolved date format", "value", dateFormat.Value, "source", dateFormat.Source)

	tpl, err := templates.Resolve(fsys, dir, opts.Name)
	if err != nil {
		return "", err
	}

	log := output.TemplateLogger(tpl.Name)
	log.Debug("template resolved", "path", tpl.Path, "dated", tpl.Dated)

	resolver := placeholder.NewChainResolver(preset, placeholder.NewPrompter(opts.In, opts.Out))

	invokerOpts := []templates.InvokerOption{
		templates.WithDateFormat(dateFormat.Value),
		templates.WithForce(flags.Force),
	}
	if opts.OutputDir != "" {
		invokerOpts = append(invokerOpts, templates.WithOutputDir(opts.OutputDir))
	}
	if opts.Config.Verbose {
		invokerOpts = append(invokerOpts, templates.WithEcho(opts.Out))
	}

	path, err := templates.NewInvoker(fsys, resolver, invokerOpts...).Invoke(ctx, tpl, opts.Fragments)
	if err != nil {
		log.Error("could not create file", "error", err)
		return "", &perrors.ExitError{Code: perrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	return path, nil
}

// RequireTemplateDir fails with a not-found detail error when dir is not an
// existing directory.
func RequireTemplateDir(fsys afero.Fs, dir string) error {
	ok, err := afero.DirExists(fsys, dir)
	if err != nil {
		return &perrors.IOError{Op: "stat", Path: dir, Err: err}
	}
	if !ok {
		return perrors.NewNotFoundError(
			"must have some plaintext templates in the template directory",
			dir,
			"Create it and add <name>.txt or DATE-<name>.txt files, or point --template-dir (env: PTT_TEMPLATE_DIR) elsewhere.",
		)
	}
	return nil
}
