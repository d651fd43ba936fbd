package workers

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type CompletionRepository interface {
	ListDays(ctx context.Context, userID string) ([]string, error)
}

type StreakJob struct {
	UserID string
}

// StreakWorker recomputes a user's streak counters in the background after
// each completion, so reads never pay for the walk.
type StreakWorker struct {
	userRepo       UserRepository
	completionRepo CompletionRepository
	jobs           chan StreakJob
}

func NewStreakWorker(uRepo UserRepository, cRepo CompletionRepository) *StreakWorker {
	return &StreakWorker{
		userRepo:       uRepo,
		completionRepo: cRepo,
		jobs:           make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	user, err := w.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching user %s: %v", job.UserID, err)
		return
	}

	days, err := w.completionRepo.ListDays(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching completions for %s: %v", job.UserID, err)
		return
	}

	current, longest := calculateStreaks(days, domain.Today())

	if user.CurrentStreak != current || user.LongestStreak != longest {
		if err := w.userRepo.UpdateStreaks(ctx, user.ID, current, longest); err != nil {
			log.Printf("Worker Failed to update streaks for %s: %v", user.Username, err)
		} else {
			log.Printf("Streaks updated for %s: Current=%d, Longest=%d", user.Username, current, longest)
		}
	}
}

// calculateStreaks walks the user's completed days. The current streak must
// end at today or yesterday; anything older means it is broken. The longest
// streak is the best consecutive run anywhere in the history.
func calculateStreaks(days []string, today string) (int, int) {
	if len(days) == 0 {
		return 0, 0
	}

	unique := make(map[string]bool)
	var sorted []time.Time

	for _, d := range days {
		if unique[d] {
			continue
		}
		t, err := domain.ParseDay(d)
		if err != nil {
			continue
		}
		unique[d] = true
		sorted = append(sorted, t)
	}

	if len(sorted) == 0 {
		return 0, 0
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	currentStreak := 0
	now, err := domain.ParseDay(today)
	if err != nil {
		return 0, 0
	}

	diff := now.Sub(sorted[0]).Hours() / 24
	if diff >= 0 && diff <= 1 {
		currentStreak = 1
		for i := 0; i < len(sorted)-1; i++ {
			if sorted[i].Sub(sorted[i+1]).Hours() == 24 {
				currentStreak++
			} else {
				break
			}
		}
	}

	longestStreak := 0
	tempStreak := 1

	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Sub(sorted[i+1]).Hours() == 24 {
			tempStreak++
		} else {
			if tempStreak > longestStreak {
				longestStreak = tempStreak
			}
			tempStreak = 1
		}
	}
	if tempStreak > longestStreak {
		longestStreak = tempStreak
	}

	return currentStreak, longestStreak
}
