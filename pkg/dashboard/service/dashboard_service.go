package service

import (
	"context"
	"io"

	cropsvc "agbrain/pkg/crop/service"
	farmsvc "agbrain/pkg/farm/service"
)

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
	// ExportXLSX writes the summary as a workbook to w.
	ExportXLSX(ctx context.Context, w io.Writer) error
}

type Summary struct {
	Farms        farmsvc.CountResult      `json:"farms"`
	TotalArea    float64                  `json:"totalArea"`
	AreaByType   farmsvc.AreaByTypeResult `json:"areaByType"`
	FarmsByState []farmsvc.StateCount     `json:"farmsByState"`
	CropsByName  []cropsvc.CropCount      `json:"cropsByName"`
}
