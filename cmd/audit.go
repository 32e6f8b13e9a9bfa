package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasnim.dev/aws-iam-audit/internal/audit"
	awsclient "tasnim.dev/aws-iam-audit/internal/aws"
	awss3 "tasnim.dev/aws-iam-audit/internal/aws/s3"
	"tasnim.dev/aws-iam-audit/internal/config"
	"tasnim.dev/aws-iam-audit/internal/logging"
	"tasnim.dev/aws-iam-audit/internal/report"
	"tasnim.dev/aws-iam-audit/internal/ui"
)

type auditRunner interface {
	Run(ctx context.Context) (*audit.Report, error)
}

type reportUploader interface {
	PutReport(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error)
}

// runner drives one audit from enumeration to output.
type runner struct {
	auditor  auditRunner
	writer   *report.Writer
	uploader reportUploader
	bucket   string
	prefix   string
	status   *ui.Status
	logger   *zap.Logger
	now      func() time.Time
}

func (r *runner) run(ctx context.Context, format report.Format) error {
	startedAt := r.now()
	r.status.Info("Running audit...")

	rep, err := r.auditor.Run(ctx)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}
	if rep.Len() == 0 {
		r.status.Info("No users found")
		return nil
	}
	r.logger.Info("audit complete", zap.Int("users", rep.Len()), zap.Duration("elapsed", r.now().Sub(startedAt)))

	if !format.IsFile() {
		return r.writer.Console(rep)
	}

	path, ok := r.writer.WriteFile(rep, format, startedAt)
	if ok && r.uploader != nil {
		r.upload(ctx, path, format)
	}
	return nil
}

// upload copies a written report to S3. Failure only warns; the local file
// is already in place.
func (r *runner) upload(ctx context.Context, path string, format report.Format) {
	key := awss3.ReportKey(r.prefix, filepath.Base(path))
	log := r.logger.With(zap.String("path", path), zap.String("bucket", r.bucket), zap.String("key", key))

	f, err := r.writer.Open(path)
	if err != nil {
		log.Warn("report upload skipped", zap.Error(err))
		r.status.Warn("Could not upload report: %v", err)
		return
	}
	defer f.Close()

	location, err := r.uploader.PutReport(ctx, r.bucket, key, f, format.ContentType())
	if err != nil {
		log.Warn("report upload failed", zap.Error(err))
		r.status.Warn("Could not upload report: %v", err)
		return
	}
	log.Info("report uploaded")
	r.status.Success("Uploaded to %s", location)
}

func NewAuditCmd() *cobra.Command {
	var outputType string
	var format report.Format

	cmd := &cobra.Command{
		Use:   "aws-iam-audit",
		Short: "Audit the managed policies and permissions of every IAM user",
		Long: `Lists every IAM user in the account along with the managed policies attached
directly or through groups, and the statements of each policy's default version.

Settings such as profile, region and output directory are read from
~/.config/aws-iam-audit/config.yaml.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ValidationError{Err: err}
			}
			return nil
		},
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(outputType)
			if err != nil {
				return &ValidationError{Err: err}
			}
			format = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger, err := logging.New(cfg.Level())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()

			awsCfg, err := awsclient.LoadConfig(ctx, cfg.Profile, cfg.Region)
			if err != nil {
				return err
			}
			client := awsclient.NewServiceClient(awsCfg)
			status := ui.NewStatus(cmd.ErrOrStderr())

			if accountID := awsclient.GetAccountID(ctx, client.STS); accountID != "" {
				logger = logger.With(zap.String("account", accountID))
				status.Detail("Account %s (%s)", accountID, awsCfg.Region)
			}

			r := &runner{
				auditor: audit.New(client.IAM, logger),
				writer:  report.NewWriter(afero.NewOsFs(), cfg.OutputDirectory(), cmd.OutOrStdout(), status, logger),
				bucket:  cfg.ReportBucket,
				prefix:  cfg.ReportPrefix,
				status:  status,
				logger:  logger,
				now:     time.Now,
			}
			if cfg.UploadEnabled() {
				r.uploader = client.S3
			}
			return r.run(ctx, format)
		},
	}

	cmd.Flags().StringVarP(&outputType, "output_type", "o", string(report.FormatStdout), "Output type: stdout, csv or json")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &ValidationError{Err: err}
	})

	return cmd
}
