package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	appErrors "github.com/unclebandit/customer-viewer/internal/errors"
	"github.com/unclebandit/customer-viewer/internal/model"
	"github.com/unclebandit/customer-viewer/internal/queue"
	"github.com/unclebandit/customer-viewer/internal/repository"
)

// SeedBatchSize is the number of synthetic customers a seed run inserts.
const SeedBatchSize = 50

// GenerateSeedRecords builds the synthetic batch: sno 1..50, ages 20..49,
// "+91 " phones with 10 zero-padded digits and locations "City 1".."City 10".
func GenerateSeedRecords(rng *rand.Rand, now time.Time) []model.Customer {
	// postgres keeps microseconds; truncate so the stored value round-trips exactly
	createdAt := now.UTC().Truncate(time.Microsecond)

	records := make([]model.Customer, 0, SeedBatchSize)
	for i := 1; i <= SeedBatchSize; i++ {
		records = append(records, model.Customer{
			Sno:          i,
			CustomerName: fmt.Sprintf("Customer %d", i),
			Age:          rng.IntN(30) + 20,
			Phone:        fmt.Sprintf("+91 %010d", rng.Int64N(10_000_000_000)),
			Location:     fmt.Sprintf("City %d", rng.IntN(10)+1),
			CreatedAt:    createdAt,
		})
	}
	return records
}

type SeedService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue // optional
	Rand         *rand.Rand
	Now          func() time.Time
}

// Seed inserts one synthetic batch as a single all-or-nothing unit and
// returns the number of inserted rows.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	records := GenerateSeedRecords(rng, now())

	if err := s.CustomerRepo.InsertBatch(ctx, records); err != nil {
		log.Println("❌ Error inserting dummy records:", err)
		return 0, appErrors.NewSeedFailed(len(records), err)
	}
	log.Printf("✅ Inserted %d dummy records\n", len(records))

	if s.Queue != nil {
		event := queue.SeedEvent{Inserted: len(records), SeededAt: records[0].CreatedAt}
		if err := s.Queue.Publish(queue.TopicCustomersSeeded, event); err != nil {
			log.Println("⚠️ Failed to publish seed event:", err)
		}
	}

	return len(records), nil
}
