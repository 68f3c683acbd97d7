package utils

import (
	"os"
	"time"
)

func CreateDirectory(directoryPath string) error {
	return os.MkdirAll(directoryPath, 0777)
}

func GetHumanReadableTime(timestamp int64) string {
	if timestamp <= 0 {
		return ""
	}
	return time.Unix(timestamp, 0).In(time.UTC).Format(time.RFC822)
}
