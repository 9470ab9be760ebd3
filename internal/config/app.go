package config

import "os"

func Development() bool {
	dev, ok := os.LookupEnv("DEVELOPMENT")
	return ok && dev != "0"
}

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}
