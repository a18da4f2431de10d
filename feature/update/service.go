package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuanweize/BTtrackers-updater/core/reconcile"
	"github.com/yuanweize/BTtrackers-updater/core/tracker"

	"go.uber.org/zap"
)

var (
	// ErrNoTrackers aborts an update path when the fetch produced nothing:
	// existing state must never be overwritten with an empty set.
	ErrNoTrackers = errors.New("no trackers fetched from any source")

	// ErrRPCDisabled marks an rpc path that cannot run because the rpc
	// target is not enabled in the configuration.
	ErrRPCDisabled = errors.New("rpc target is not enabled")
)

// Fetcher retrieves the fresh tracker set from the remote sources.
type Fetcher interface {
	FetchAll(ctx context.Context) tracker.Set
}

// ConfigFile is the file-backed tracker target.
type ConfigFile interface {
	Validate() error
	ReadTrackers() (tracker.Set, error)
	Backup() error
	WriteTrackers(merged tracker.Set) error
}

// RPCClient is the live-instance tracker target.
type RPCClient interface {
	Trackers(ctx context.Context) (tracker.Set, error)
	Push(ctx context.Context, merged tracker.Set) error
}

// Service drives one reconciliation run: read current state, fetch fresh
// lists, merge, and commit through the targets the configured mode selects.
type Service struct {
	cfg     Config
	fetcher Fetcher
	file    ConfigFile
	rpc     RPCClient // nil when the rpc target is disabled
	log     *zap.Logger
}

// NewService creates the orchestrator. Pass a nil rpc client when the rpc
// target is disabled; the service treats that as "rpc unavailable".
func NewService(cfg Config, fetcher Fetcher, file ConfigFile, rpc RPCClient, log *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		file:    file,
		rpc:     rpc,
		log:     log,
	}
}

// Run executes one update according to the configured mode.
func (s *Service) Run(ctx context.Context) error {
	switch s.cfg.Mode {
	case ModeRPC:
		return s.runRPCWithFallback(ctx)
	case ModeHybrid:
		return s.runHybrid(ctx)
	default:
		return s.runConfig(ctx)
	}
}

// DryRun computes and reports the would-be changes without touching any
// target. The fetch still happens for real so the report is honest.
func (s *Service) DryRun(ctx context.Context) error {
	s.log.Info("Dry-run mode, no target will be modified")

	old, err := s.file.ReadTrackers()
	if err != nil {
		return err
	}

	result, err := s.reconcileAgainst(ctx, old)
	if err != nil {
		return err
	}

	s.log.Info("Dry-run summary",
		zap.Int("current", old.Len()),
		zap.Int("would_add", len(result.Added)),
		zap.Int("resulting_total", result.Merged.Len()),
	)
	for _, t := range result.Added {
		s.log.Info("Would add tracker", zap.String("tracker", t))
	}
	if len(result.Added) == 0 {
		s.log.Info("No new trackers to add")
	}
	return nil
}

// runConfig is the config file path: validate, read, fetch, merge, backup,
// write.
func (s *Service) runConfig(ctx context.Context) error {
	s.log.Info("Updating trackers in config file")

	if err := s.file.Validate(); err != nil {
		return fmt.Errorf("config file precondition failed: %w", err)
	}

	old, err := s.file.ReadTrackers()
	if err != nil {
		return err
	}
	s.log.Info("Current trackers in config file", zap.Int("count", old.Len()))

	result, err := s.reconcileAgainst(ctx, old)
	if err != nil {
		return err
	}

	// backup failure is a warning, never an abort
	if err := s.file.Backup(); err != nil {
		s.log.Warn("Backup failed, continuing with update", zap.Error(err))
	}

	if err := s.file.WriteTrackers(result.Merged); err != nil {
		return err
	}

	s.report("config_file", result)
	return nil
}

// runRPC is the rpc path: read live state, fetch, merge, push.
func (s *Service) runRPC(ctx context.Context) error {
	if s.rpc == nil {
		return ErrRPCDisabled
	}

	s.log.Info("Updating trackers via rpc")

	old, err := s.rpc.Trackers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current trackers via rpc: %w", err)
	}
	s.log.Info("Current trackers via rpc", zap.Int("count", old.Len()))

	result, err := s.reconcileAgainst(ctx, old)
	if err != nil {
		return err
	}

	if err := s.rpc.Push(ctx, result.Merged); err != nil {
		return err
	}

	s.report("rpc", result)
	return nil
}

// runRPCWithFallback runs the rpc path and, when it fails and fallback is
// enabled, re-runs the config path from scratch with an independent fetch.
func (s *Service) runRPCWithFallback(ctx context.Context) error {
	err := s.runRPC(ctx)
	if err == nil {
		return nil
	}

	if !s.cfg.FallbackToConfig {
		return err
	}

	s.log.Warn("Rpc update failed, falling back to config file", zap.Error(err))
	return s.runConfig(ctx)
}

// runHybrid runs both paths independently; a failure in one never aborts the
// other. Overall success means at least one channel was updated.
func (s *Service) runHybrid(ctx context.Context) error {
	s.log.Info("Hybrid mode, updating config file and rpc independently")

	configErr := s.runConfig(ctx)
	if configErr != nil {
		s.log.Error("Config file update failed", zap.Error(configErr))
	}

	if s.rpc == nil {
		s.log.Info("Rpc target not enabled, skipping rpc update")
		return configErr
	}

	rpcErr := s.runRPC(ctx)
	if rpcErr != nil {
		s.log.Error("Rpc update failed", zap.Error(rpcErr))
	}

	if configErr == nil || rpcErr == nil {
		return nil
	}
	return fmt.Errorf("hybrid update failed on both targets: %w", errors.Join(configErr, rpcErr))
}

// reconcileAgainst fetches the fresh set and merges it with old. An empty
// fetch aborts the path before any mutation.
func (s *Service) reconcileAgainst(ctx context.Context, old tracker.Set) (*reconcile.Result, error) {
	fresh := s.fetcher.FetchAll(ctx)
	if fresh.Len() == 0 {
		return nil, ErrNoTrackers
	}
	return reconcile.Merge(old, fresh), nil
}

// report logs the outcome of one committed target update.
func (s *Service) report(target string, result *reconcile.Result) {
	s.log.Info("Tracker update committed",
		zap.String("target", target),
		zap.Int("total", result.Merged.Len()),
		zap.Int("added", len(result.Added)),
	)

	for _, t := range result.Added {
		s.log.Info("Tracker added", zap.String("tracker", t))
	}
	if len(result.Added) == 0 {
		s.log.Info("No new trackers")
	}

	// union never removes; a non-empty Removed means the merge semantics broke
	if len(result.Removed) > 0 {
		s.log.Warn("Merge unexpectedly removed trackers", zap.Strings("removed", result.Removed))
	}
}
