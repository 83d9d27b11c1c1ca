package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/constants"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
	"github.com/spf13/cobra"
)

const sweepLockTTL = 10 * time.Minute

var errLockHeld = errors.New("another sweep is running")

type sweeper interface {
	SweepExpired(ctx context.Context) (*models.SweepResult, error)
}

type retryDrainer interface {
	DrainRetryQueue(ctx context.Context, retrier *retry.Retrier, limit int) (notifier.DrainResult, error)
}

type joinPurger interface {
	PurgeDecided(ctx context.Context, olderThan time.Duration) (int64, error)
}

type proposer interface {
	ProposeOptimization(ctx context.Context, admin models.Identity) (*models.ProposeResult, error)
}

// systemIdentity is recorded as the creator of scheduled proposals
var systemIdentity = models.Identity{
	Email: "tripctl@system",
	Name:  "tripctl",
	Role:  models.RoleAdmin,
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire pending trips whose approval window has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "tripctl/sweep", func(ctx context.Context) error {
				return runSweep(ctx, a.redis, a.tripUC, cmd.OutOrStdout())
			})
		},
	}
}

func newNotifyRetryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "notify-retry",
		Short: "Resend queued notifications that failed to deliver",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "tripctl/notify-retry", func(ctx context.Context) error {
				return runNotifyRetry(ctx, a.dispatcher, a.retrier, limit, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum messages to resend, 0 for all")
	return cmd
}

func newPurgeJoinsCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge-joins",
		Short: "Delete rejected and cancelled join requests decided long ago",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			a, err := bootstrap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "tripctl/purge-joins", func(ctx context.Context) error {
				return runPurgeJoins(ctx, a.joinUC, olderThan, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 720*time.Hour, "age of the decision")
	return cmd
}

func newProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose",
		Short: "Group eligible approved trips into consolidation proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "tripctl/propose", func(ctx context.Context) error {
				return runPropose(ctx, a.optUC, cmd.OutOrStdout())
			})
		},
	}
}

func runSweep(ctx context.Context, rdb *database.RedisClient, uc sweeper, out io.Writer) error {
	release, err := acquireLock(ctx, rdb, constants.KeySweepLock, sweepLockTTL)
	if errors.Is(err, errLockHeld) {
		logger.Info("Sweep skipped, lock held by another run")
		return printJSON(out, map[string]bool{"skipped": true})
	}
	if err != nil {
		return err
	}
	defer release()

	result, err := uc.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	logger.Info("Sweep completed",
		logger.Int("scanned", result.Scanned),
		logger.Int("expired", len(result.Expired)),
		logger.Int("failed", len(result.Failed)))
	return printJSON(out, result)
}

func runNotifyRetry(ctx context.Context, d retryDrainer, retrier *retry.Retrier, limit int, out io.Writer) error {
	result, err := d.DrainRetryQueue(ctx, retrier, limit)
	if err != nil {
		return fmt.Errorf("notification retry failed: %w", err)
	}
	logger.Info("Notification retry completed",
		logger.Int("sent", result.Sent),
		logger.Int("requeued", result.Requeued),
		logger.Int("dropped", result.Dropped))
	return printJSON(out, result)
}

func runPurgeJoins(ctx context.Context, uc joinPurger, olderThan time.Duration, out io.Writer) error {
	deleted, err := uc.PurgeDecided(ctx, olderThan)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}
	logger.Info("Join requests purged",
		logger.Int64("deleted", deleted),
		logger.Duration("older_than", olderThan))
	return printJSON(out, map[string]int64{"deleted": deleted})
}

func runPropose(ctx context.Context, uc proposer, out io.Writer) error {
	result, err := uc.ProposeOptimization(ctx, systemIdentity)
	if err != nil {
		return fmt.Errorf("propose failed: %w", err)
	}
	logger.Info("Optimization proposals created",
		logger.Int("created", len(result.Created)),
		logger.Int("skipped", result.Skipped))
	return printJSON(out, result)
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// acquireLock takes key for ttl. The release func only deletes the key
// while it still holds this run's token.
func acquireLock(ctx context.Context, rdb *database.RedisClient, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	ok, err := rdb.SetNX(ctx, key, token, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire %s: %w", key, err)
	}
	if !ok {
		return nil, errLockHeld
	}
	return func() {
		if err := releaseScript.Run(context.WithoutCancel(ctx), rdb.Client, []string{key}, token).Err(); err != nil {
			logger.Warn("Failed to release lock", logger.String("key", key), logger.Err(err))
		}
	}, nil
}
