package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-dev-utils/internal/client"
	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/internal/store"
	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/internal/tui"
	"github.com/MKhiriev/go-dev-utils/internal/window"
	"github.com/MKhiriev/go-dev-utils/models"
)

// errTransformFailed means the failure was already reported on stderr.
var errTransformFailed = errors.New("transform failed")

// CLI is the kong command tree.
type CLI struct {
	Flags config.Flags `embed:""`

	UI      uiCmd      `cmd:"" default:"1" help:"Open the terminal window (default)."`
	Base64  base64Cmd  `cmd:"" name:"base64" help:"Encode or decode Base64."`
	JWT     jwtCmd     `cmd:"" name:"jwt" help:"Decode a JWT. The signature is never verified."`
	JSON    jsonCmd    `cmd:"" name:"json" help:"Format, minify or validate JSON."`
	Version versionCmd `cmd:"" help:"Print build information."`
}

// runtime is what every command runs against.
type runtime struct {
	ctx      context.Context
	cfg      *config.StructuredConfig
	services *service.Services
	info     models.AppBuildInfo
	logger   *logger.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type uiCmd struct{}

func (c *uiCmd) Run(rt *runtime) error {
	storages, err := store.NewClientStorages(rt.ctx, rt.cfg.Storage, rt.logger)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			rt.logger.Err(err).Str("func", "*uiCmd.Run").Msg("error closing storages")
		}
	}()

	lifecycle := window.NewLifecycle(storages.WindowState, rt.logger)
	ui := tui.New(rt.services, lifecycle, tui.OptionsFromConfig(rt.cfg.UI), rt.logger)

	return client.NewApp(lifecycle, ui, rt.cfg.UI.ShowOnLaunch, rt.logger).Run(rt.ctx)
}

type base64Cmd struct {
	Encode base64EncodeCmd `cmd:"" help:"Encode text as standard padded Base64."`
	Decode base64DecodeCmd `cmd:"" help:"Decode standard Base64 to UTF-8 text."`
}

type base64EncodeCmd struct {
	Text *string `arg:"" optional:"" help:"Text to encode. Read from stdin when omitted."`
}

func (c *base64EncodeCmd) Run(rt *runtime) error {
	return rt.transform(c.Text, models.Encode, models.TransformOptions{})
}

type base64DecodeCmd struct {
	Text *string `arg:"" optional:"" help:"Base64 to decode. Read from stdin when omitted."`
}

func (c *base64DecodeCmd) Run(rt *runtime) error {
	return rt.transform(c.Text, models.Decode, models.TransformOptions{})
}

type jwtCmd struct {
	Token    *string `arg:"" optional:"" help:"Token to decode. Read from stdin when omitted."`
	Metadata bool    `short:"m" help:"Also print algorithm, issuer, subject, audience and timestamps."`
}

func (c *jwtCmd) Run(rt *runtime) error {
	token, err := rt.input(c.Token)
	if err != nil {
		return err
	}

	doc := rt.services.JWTService.Decode(token)
	if !doc.Valid {
		return rt.fail(doc.ErrorMessage)
	}

	fmt.Fprintln(rt.stdout, transform.RenderJWT(doc))
	if c.Metadata {
		writeMetadata(rt.stdout, rt.services.JWTService.Metadata(doc))
	}
	return nil
}

type jsonCmd struct {
	Format   jsonFormatCmd   `cmd:"" help:"Pretty-print JSON with sorted keys."`
	Minify   jsonMinifyCmd   `cmd:"" help:"Print JSON on one line, keys in source order."`
	Validate jsonValidateCmd `cmd:"" help:"Check that the input is JSON."`
}

type jsonFormatCmd struct {
	Text   *string `arg:"" optional:"" help:"JSON to format. Read from stdin when omitted."`
	Indent int     `short:"i" help:"Spaces per nesting level."`
}

func (c *jsonFormatCmd) Run(rt *runtime) error {
	return rt.transform(c.Text, models.Format, models.TransformOptions{IndentWidth: c.Indent})
}

type jsonMinifyCmd struct {
	Text *string `arg:"" optional:"" help:"JSON to minify. Read from stdin when omitted."`
}

func (c *jsonMinifyCmd) Run(rt *runtime) error {
	return rt.transform(c.Text, models.Minify, models.TransformOptions{})
}

type jsonValidateCmd struct {
	Text *string `arg:"" optional:"" help:"JSON to validate. Read from stdin when omitted."`
}

func (c *jsonValidateCmd) Run(rt *runtime) error {
	return rt.transform(c.Text, models.Validate, models.TransformOptions{})
}

type versionCmd struct{}

func (c *versionCmd) Run(rt *runtime) error {
	fmt.Fprintln(rt.stdout, rt.services.AppInfoService.GetAppInfo(rt.ctx).String())
	return nil
}

func (rt *runtime) transform(arg *string, mode models.Mode, opts models.TransformOptions) error {
	text, err := rt.input(arg)
	if err != nil {
		return err
	}

	res := rt.services.TransformService.Run(models.TransformRequest{RawInput: text, Mode: mode, Options: opts})
	if !res.Succeeded {
		return rt.fail(res.ErrorMessage)
	}

	fmt.Fprintln(rt.stdout, res.Output)
	return nil
}

// input returns arg, or stdin without its final line break when arg was not
// given. An explicit empty argument is used as is.
func (rt *runtime) input(arg *string) (string, error) {
	if arg != nil {
		return *arg, nil
	}

	data, err := io.ReadAll(rt.stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func (rt *runtime) fail(message string) error {
	if message == "" {
		message = "no input"
	}
	fmt.Fprintln(rt.stderr, message)
	return errTransformFailed
}

func writeMetadata(w io.Writer, meta models.JWTMetadata) {
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "%s: %s\n", label, value)
		}
	}
	stamp := func(ts *time.Time) string {
		if ts == nil {
			return ""
		}
		return ts.UTC().Format(time.RFC3339)
	}

	line("alg", meta.Algorithm)
	line("typ", meta.Type)
	line("iss", meta.Issuer)
	line("sub", meta.Subject)
	line("aud", strings.Join(meta.Audience, ", "))
	line("iat", stamp(meta.IssuedAt))
	line("nbf", stamp(meta.NotBefore))
	line("exp", stamp(meta.ExpiresAt))
	line("status", meta.Status())
}
