package constants

import (
	"os"
	"path/filepath"
)

// MetadataTable is the DynamoDB table consulted for song metadata.
const MetadataTable = "abctab-metadata"

func GetRootDir() string {
	path := os.Getenv("ABCTAB_ROOT")
	if path != "" {
		return path
	}
	return "."
}

func GetChordsPath() string {
	path := os.Getenv("ABCTAB_CHORDS_PATH")
	if path != "" {
		return path
	}
	return filepath.Join(GetRootDir(), "chords.json")
}

func GetSongsDir() string {
	path := os.Getenv("ABCTAB_SONGS_PATH")
	if path != "" {
		return path
	}
	return filepath.Join(GetRootDir(), "songs")
}

func GetInboxDir() string {
	path := os.Getenv("ABCTAB_INBOX_PATH")
	if path != "" {
		return path
	}
	return filepath.Join(GetRootDir(), "abc_inbox")
}

func GetProcessedDir() string {
	path := os.Getenv("ABCTAB_PROCESSED_PATH")
	if path != "" {
		return path
	}
	return filepath.Join(GetRootDir(), "abc_processed")
}

// GetMetadataEndpoint returns the DynamoDB endpoint for song metadata, or
// "" when the lookup is turned off.
func GetMetadataEndpoint() string {
	return os.Getenv("ABCTAB_METADATA_ENDPOINT")
}

func GetMetadataRegion() string {
	region := os.Getenv("ABCTAB_METADATA_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}
