package utils

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"elevate/repository"
)

// logStats logs scheduler events with timestamp
func logStats(message string) {
	log.Printf("[STATS %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartStatsLogger reports collection stats every hour: how many ratings
// exist and which record currently leads. The returned cron can be stopped
// during shutdown.
func StartStatsLogger(repo repository.ElevatorRepository) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		reportCollectionStats(repo)
	})

	c.Start()
	return c
}

func reportCollectionStats(repo repository.ElevatorRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	elevators, err := repo.FindAll(ctx)
	if err != nil {
		logStats("Error fetching elevators: " + err.Error())
		return
	}
	if len(elevators) == 0 {
		logStats("No elevators rated yet")
		return
	}

	top, err := repo.FindTopRated(ctx, 1)
	if err != nil {
		logStats("Error fetching top rated: " + err.Error())
		return
	}
	if len(top) == 0 {
		return
	}

	log.Printf("[STATS %s] %d elevators rated, best overall %.2f at %s",
		time.Now().Format(time.RFC3339), len(elevators), top[0].OverallScore, top[0].Location.Name)
}
