package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"playroom/internal/config"
	"playroom/internal/db"
)

var header = []string{"id", "session_id", "game_id", "score", "total_rounds", "starts", "finished_at", "exited_at", "created_at"}

func main() {
	filePath := flag.String("file", "plays.csv", "path to write, - for stdout")
	gameID := flag.String("game", "", "only export plays of this game")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL, db.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	query := conn.Order("created_at asc")
	if *gameID != "" {
		query = query.Where("game_id = ?", *gameID)
	}
	var plays []db.Play
	if err := query.Find(&plays).Error; err != nil {
		log.Fatalf("failed to load plays: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *filePath != "-" {
		file, err := os.Create(*filePath)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *filePath, err)
		}
		defer file.Close()
		out = file
	}
	if err := writePlays(out, plays); err != nil {
		log.Fatalf("failed to write plays: %v", err)
	}
	log.Printf("exported %d plays", len(plays))
}

func writePlays(w io.Writer, plays []db.Play) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, play := range plays {
		row := []string{
			strconv.FormatUint(uint64(play.ID), 10),
			play.SessionID,
			play.GameID,
			strconv.Itoa(play.Score),
			strconv.Itoa(play.TotalRounds),
			strconv.Itoa(play.Starts),
			optionalTime(play.FinishedAt),
			optionalTime(play.ExitedAt),
			play.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func optionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
