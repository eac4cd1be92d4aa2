package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireHours is the session lifetime; CSRF tokens share it.
	ExpireHours int `json:"expire_hours" yaml:"expire_hours"`
}

func (j *Jwt) Expire() time.Duration {
	if j.ExpireHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.ExpireHours) * time.Hour
}
