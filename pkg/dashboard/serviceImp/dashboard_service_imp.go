package serviceImp

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	cropsvc "agbrain/pkg/crop/service"
	"agbrain/pkg/dashboard/service"
	farmsvc "agbrain/pkg/farm/service"
	"agbrain/pkg/logger"
)

const (
	SheetSummary = "Resumo"
	SheetStates  = "Estados"
	SheetCrops   = "Culturas"
)

type dashboardSvc struct {
	farms farmsvc.FarmService
	crops cropsvc.CropService
	log   *logger.Logger
}

func NewDashboardService(farms farmsvc.FarmService, crops cropsvc.CropService, log *logger.Logger) service.DashboardService {
	return &dashboardSvc{farms: farms, crops: crops, log: log.With("service", "DashboardService")}
}

func (s *dashboardSvc) Summary(ctx context.Context) (*service.Summary, error) {
	count, err := s.farms.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.farms.TotalArea(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.farms.AreaByType(ctx)
	if err != nil {
		return nil, err
	}
	byState, err := s.farms.CountByState(ctx)
	if err != nil {
		return nil, err
	}
	byName, err := s.crops.CountByName(ctx)
	if err != nil {
		return nil, err
	}
	return &service.Summary{
		Farms:        *count,
		TotalArea:    total.TotalArea,
		AreaByType:   *byType,
		FarmsByState: byState,
		CropsByName:  byName,
	}, nil
}

func (s *dashboardSvc) ExportXLSX(ctx context.Context, w io.Writer) error {
	sum, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer func() {
		if err := x.Close(); err != nil {
			s.log.Warn("close workbook", "err", err)
		}
	}()

	if err := x.SetSheetName(x.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	resumo := [][]any{
		{"Indicador", "Valor"},
		{"Fazendas", sum.Farms.Count},
		{"Área total (ha)", sum.TotalArea},
		{"Área agricultável (ha)", sum.AreaByType.ArableArea},
		{"Área de vegetação (ha)", sum.AreaByType.VegetationArea},
	}
	if err := writeRows(x, SheetSummary, resumo); err != nil {
		return err
	}

	states := [][]any{{"Estado", "Fazendas"}}
	for _, st := range sum.FarmsByState {
		states = append(states, []any{st.State, st.Count})
	}
	if err := addSheet(x, SheetStates, states); err != nil {
		return err
	}

	crops := [][]any{{"Cultura", "Quantidade"}}
	for _, c := range sum.CropsByName {
		crops = append(crops, []any{c.Crop, c.Count})
	}
	if err := addSheet(x, SheetCrops, crops); err != nil {
		return err
	}

	if err := x.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func addSheet(x *excelize.File, name string, rows [][]any) error {
	if _, err := x.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	return writeRows(x, name, rows)
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
