package blob

import (
	"fmt"
	"strings"

	appcfg "github.com/fitforge/fitforge-api/internal/config"
)

type Logger interface {
	Printf(format string, v ...any)
}

// NewBlobStore builds the archive store for mode off|local|s3. Mode
// off returns a nil Store, which callers treat as archiving disabled.
func NewBlobStore(cfg appcfg.BlobConfig, logger Logger) (Store, string, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = appcfg.BlobModeOff
	}

	switch mode {
	case appcfg.BlobModeOff:
		logf(logger, "INFO blob: mode=off, raw response archive disabled")
		return nil, appcfg.BlobModeOff, nil

	case appcfg.BlobModeLocal:
		store, err := NewLocalStore(cfg.LocalDir)
		if err != nil {
			return nil, "", fmt.Errorf("BLOB_MODE=local init failed: %w", err)
		}
		logf(logger, "INFO blob: mode=local dir=%s", cfg.LocalDir)
		return store, appcfg.BlobModeLocal, nil

	case appcfg.BlobModeS3:
		if !cfg.S3.IsConfigured() {
			missing := cfg.S3.MissingRequired()
			logf(logger, "FATAL blob.s3: code=s3_config_incomplete missing=%v", missing)
			logf(logger, "FATAL blob.s3: %s", cfg.S3.DiagnosticsSummary())
			return nil, "", fmt.Errorf("BLOB_MODE=s3 requested but missing required config: %s", strings.Join(missing, ", "))
		}

		logf(logger, "INFO blob.s3: code=s3_ready %s", cfg.S3.DiagnosticsSummary())
		store, err := NewS3Store(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
		if err != nil {
			logf(logger, "FATAL blob.s3: init_failed=%v", err)
			return nil, "", fmt.Errorf("BLOB_MODE=s3 init failed: %w", err)
		}

		logf(logger, "INFO blob: mode=s3 bucket=%s", cfg.S3.Bucket)
		return store, appcfg.BlobModeS3, nil

	default:
		return nil, "", fmt.Errorf("unsupported blob mode: %s", mode)
	}
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}
