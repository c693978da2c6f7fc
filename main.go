package main

import (
	"fmt"
	"os"
	"time"

	"vh-server/config"
	"vh-server/di"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	fmt.Println("warming status cache!")
	if err := container.StatusRefresherService.RefreshStatuses(); err != nil {
		fmt.Println("initial status refresh failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.StatusRefresherService.StartPeriodicJob(config.STATUS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.HoursHttpServer.Start()
}
