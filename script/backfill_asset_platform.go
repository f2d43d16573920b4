package main

import (
	"flag"
	"log"
	"strings"

	"github.com/commercegrid/mediabridge/biz/dal/model"
	"github.com/commercegrid/mediabridge/pkg/config"
	"github.com/commercegrid/mediabridge/pkg/database"
)

// Backfill tool for asset rows created before the platform column existed.
// Usage: go run script/backfill_asset_platform.go -dry-run=false

var dryRun = flag.Bool("dry-run", true, "print the planned updates without writing them")

func main() {
	flag.Parse()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	var assets []model.Asset
	if err := db.Where("platform = '' OR platform IS NULL").Find(&assets).Error; err != nil {
		log.Fatalf("load assets: %v", err)
	}
	log.Printf("found %d asset rows without a platform", len(assets))

	updated := 0
	for i := range assets {
		platform := platformFromURL(assets[i].URL)
		log.Printf("  %s -> %s", assets[i].URL, platform)
		if *dryRun {
			continue
		}
		err := db.Model(&model.Asset{}).
			Where("id = ?", assets[i].ID).
			Update("platform", platform).Error
		if err != nil {
			log.Fatalf("update asset %d: %v", assets[i].ID, err)
		}
		updated++
	}

	if *dryRun {
		log.Println("dry run, nothing written; re-run with -dry-run=false to apply")
		return
	}
	log.Printf("updated %d asset rows", updated)
}

// platformFromURL mirrors the service-layer URL shape rule: absolute URLs
// belong to the cloud platform, served paths to the local one.
func platformFromURL(url string) string {
	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://") {
		return "s3"
	}
	return "local"
}
