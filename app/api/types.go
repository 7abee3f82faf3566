package api

import (
	"github.com/eubelhor/house-scraper/app/dataset"
	"github.com/eubelhor/house-scraper/app/export"
	"github.com/eubelhor/house-scraper/app/scraper"
	"github.com/eubelhor/house-scraper/app/tasks"
)

type Handler struct {
	store       *dataset.Store
	configCache *scraper.ConfigCache
	csvExporter *export.CSVExporter
	refresher   tasks.RefresherInterface
}
