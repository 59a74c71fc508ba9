package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"duttmandir/internal/models"

	"github.com/google/uuid"
)

// One synthetic activity roughly every activityEvery ticks.
const activityEvery = 10

var syntheticNames = []string{
	"Rohan Sharma", "Priya Patel", "Amit Verma", "Rajesh Kumar",
	"Neha Singh", "Kavita Joshi", "Suresh Iyer", "Anita Desai",
}

// TickerService drifts the mock dashboard figures over time so the
// websocket feed shows movement.
type TickerService struct {
	dash *DashboardService
	rnd  *rand.Rand
}

func NewTickerService(dash *DashboardService) *TickerService {
	return &TickerService{
		dash: dash,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *TickerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			ticks++
			// visitors wander by -1..+3 per tick
			s.dash.driftVisitors(s.rnd.Intn(5) - 1)

			if ticks%activityEvery == 0 {
				s.dash.shiftOccupancy(s.rnd.Intn(2) == 0)
				s.dash.prependActivity(s.randomActivity(now))
			}
		}
	}
}

func (s *TickerService) randomActivity(now time.Time) models.Activity {
	name := syntheticNames[s.rnd.Intn(len(syntheticNames))]
	if s.rnd.Intn(2) == 0 {
		room := 100 + s.rnd.Intn(300)
		nights := 2 + s.rnd.Intn(3)
		return models.Activity{
			ID:         uuid.NewString(),
			Type:       "booking",
			Name:       name,
			Details:    fmt.Sprintf("Booked Room %d for %d nights", room, nights),
			OccurredAt: now.UTC(),
		}
	}
	amount := (5 + s.rnd.Intn(95)) * 100
	return models.Activity{
		ID:         uuid.NewString(),
		Type:       "donation",
		Name:       name,
		Details:    fmt.Sprintf("Donated ₹%s for temple upkeep", groupDigits(amount)),
		OccurredAt: now.UTC(),
	}
}
