package config

import (
	"os"
)

const (
	schedulerCronEnv         = "SCHEDULER_CRON"
	schedulerCronDisabledEnv = "SCHEDULER_CRON_DISABLED"

	// Plan every user's day early in the morning.
	defaultSchedulerCron = "0 6 * * *"
)

type TriggerConfig struct {
	Enabled  bool
	CronSpec string
}

func LoadTriggerConfig() *TriggerConfig {
	spec := os.Getenv(schedulerCronEnv)
	if spec == "" {
		spec = defaultSchedulerCron
	}

	return &TriggerConfig{
		Enabled:  os.Getenv(schedulerCronDisabledEnv) != "true",
		CronSpec: spec,
	}
}
