package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/erraggy/paralint/linterrors"
	"github.com/erraggy/paralint/webhook"
)

// WebhookFlags contains flags for the webhook command
type WebhookFlags struct {
	Secret           string
	WebhookID        string
	Timestamp        string
	SignatureHeader  string
	BodyFile         string
	ToleranceSeconds int
	Now              string
	PrintJSON        bool
	Verbose          bool
	Config           string
}

// SetupWebhookFlags creates and configures a FlagSet for the webhook command.
// Returns the FlagSet and a WebhookFlags struct with bound flag variables.
func SetupWebhookFlags() (*flag.FlagSet, *WebhookFlags) {
	fs := flag.NewFlagSet("webhook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &WebhookFlags{}

	fs.StringVar(&flags.Secret, "secret", "", "webhook signing secret (required)")
	fs.StringVar(&flags.WebhookID, "webhook-id", "", "parallel-webhook-id header value (required)")
	fs.StringVar(&flags.Timestamp, "timestamp", "", "parallel-webhook-timestamp header value, unix epoch seconds (required)")
	fs.StringVar(&flags.SignatureHeader, "signature-header", "", "parallel-webhook-signature header value (required)")
	fs.StringVar(&flags.BodyFile, "body-file", StdinFilePath, "raw request body file, or '-' for stdin")
	fs.IntVar(&flags.ToleranceSeconds, "tolerance-seconds", int(webhook.DefaultTolerance/time.Second), "replay tolerance in seconds")
	fs.StringVar(&flags.Now, "now", "", "override the current unix epoch seconds")
	fs.BoolVar(&flags.PrintJSON, "print-json", false, "print a machine-readable JSON result")
	fs.BoolVar(&flags.Verbose, "verbose", false, "write debug logs to stderr")
	fs.StringVar(&flags.Config, "config", "", "YAML configuration file (default $PARALINT_CONFIG)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: paralint webhook --secret S --webhook-id ID --timestamp T --signature-header H [flags]\n\n")
		Writef(fs.Output(), "Verify a Parallel webhook signature against the raw request body.\n")
		Writef(fs.Output(), "The signed payload is <webhook_id>.<timestamp>.<raw_body>, HMAC-SHA256 with the secret.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  paralint webhook --secret \"$SECRET\" --webhook-id wh_1 --timestamp 1700000000 \\\n")
		Writef(fs.Output(), "      --signature-header \"v1,<hex>\" --body-file body.json\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Signature matched and timestamp within tolerance\n")
		Writef(fs.Output(), "  1    Invalid delivery or unparseable signature/timestamp\n")
		Writef(fs.Output(), "  2    Missing flags or unreadable body\n")
	}

	return fs, flags
}

// HandleWebhook executes the webhook command
func HandleWebhook(args []string) error {
	fs, flags := SetupWebhookFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: ExitInput, Err: err}
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return &ExitError{Code: ExitInput, Err: fmt.Errorf("webhook command takes no positional arguments")}
	}
	for _, req := range []struct{ name, value string }{
		{"secret", flags.Secret},
		{"webhook-id", flags.WebhookID},
		{"timestamp", flags.Timestamp},
		{"signature-header", flags.SignatureHeader},
	} {
		if req.value == "" {
			return &ExitError{Code: ExitInput, Err: fmt.Errorf("webhook command requires --%s", req.name)}
		}
	}

	_, log, err := loadRuntime(flags.Config, flags.Verbose)
	if err != nil {
		return &ExitError{Code: ExitInput, Err: err}
	}
	defer func() { _ = log.Sync() }()

	v := webhook.NewVerifier(flags.Secret)
	v.Tolerance = time.Duration(flags.ToleranceSeconds) * time.Second
	if flags.Now != "" {
		now, err := strconv.ParseInt(flags.Now, 10, 64)
		if err != nil {
			return &ExitError{Code: ExitInput, Err: fmt.Errorf("invalid --now %q: must be unix epoch seconds", flags.Now)}
		}
		v.Now = func() time.Time { return time.Unix(now, 0) }
	}

	body, err := readBody(flags.BodyFile)
	if err != nil {
		return &ExitError{Code: ExitInput, Err: fmt.Errorf("reading body: %w", err)}
	}

	result, err := v.Verify(webhook.Request{
		WebhookID:       flags.WebhookID,
		Timestamp:       flags.Timestamp,
		Body:            body,
		SignatureHeader: flags.SignatureHeader,
	})
	if err != nil {
		writeVerifyError(err, flags.PrintJSON)
		return &ExitError{Code: ExitFailed}
	}
	log.Debug("webhook verified",
		zap.Bool("valid", result.Valid),
		zap.Int64("age_seconds", result.AgeSeconds),
		zap.Int("candidates", result.CandidateCount),
	)

	if flags.PrintJSON {
		if err := OutputStructured(stdout, result, FormatJSON); err != nil {
			return err
		}
	} else {
		writeVerifyReport(result)
	}

	if !result.Valid {
		return &ExitError{Code: ExitFailed}
	}
	return nil
}

func readBody(path string) ([]byte, error) {
	if path == "" || path == StdinFilePath {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// verifyErrorMessage returns the user-facing text for a verification input
// failure.
func verifyErrorMessage(err error) string {
	var se *linterrors.SignatureError
	if errors.As(err, &se) {
		switch se.Field {
		case "signature_header":
			return "Could not parse any candidate hex signatures from --signature-header"
		case "timestamp":
			return "timestamp must be a unix epoch integer"
		}
	}
	return err.Error()
}

func writeVerifyError(err error, asJSON bool) {
	msg := verifyErrorMessage(err)
	if asJSON {
		_ = OutputStructured(stdout, struct {
			Valid bool   `json:"valid"`
			Error string `json:"error"`
		}{Error: msg}, FormatJSON)
		return
	}
	Writef(stdout, "INVALID: %s\n", msg)
}

func writeVerifyReport(r *webhook.Result) {
	if r.Valid {
		Writef(stdout, "VALID\n")
	} else {
		Writef(stdout, "INVALID\n")
	}
	Writef(stdout, "matched_signature=%t\n", r.MatchedSignature)
	Writef(stdout, "within_tolerance=%t\n", r.WithinTolerance)
	Writef(stdout, "age_seconds=%d\n", r.AgeSeconds)
	Writef(stdout, "candidate_count=%d\n", r.CandidateCount)
	if !r.Valid {
		Writef(stdout, "expected_hex=%s\n", r.ExpectedHex)
	}
}
