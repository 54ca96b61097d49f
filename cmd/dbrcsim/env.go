package main

import (
	"os"
	"strconv"
)

func overrideUint64(dst *uint64, envVar string) {
	v := os.Getenv(envVar)
	if v == "" {
		return
	}

	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return
	}

	*dst = parsed
}

func overrideInt(dst *int, envVar string) {
	v := os.Getenv(envVar)
	if v == "" {
		return
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		return
	}

	*dst = parsed
}
