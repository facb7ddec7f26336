package config

import "os"

const DefaultGame = "dims=9&dims=9&mine_count=10"

// Game returns the MINES_GAME description, or DefaultGame when unset.
func Game() string {
	game, ok := os.LookupEnv("MINES_GAME")
	if !ok || game == "" {
		return DefaultGame
	}
	return game
}

func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

// Development reports whether DEVELOPMENT is set to anything but "0".
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
