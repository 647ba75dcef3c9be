package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

// ExportService renders stat snapshots as Excel workbooks for the
// coaching staff.
type ExportService struct {
	batting repository.BattingStatRepository
	logger  *zap.Logger
}

func NewExportService(batting repository.BattingStatRepository, logger *zap.Logger) *ExportService {
	return &ExportService{batting: batting, logger: logger}
}

var battingExportHeaders = []string{
	"選手名", "学年", "背番号", "期間", "試合", "打席", "打数", "得点", "安打",
	"二塁打", "三塁打", "本塁打", "塁打", "打点", "盗塁", "犠打", "犠飛",
	"四球", "三振", "失策", "打率", "出塁率", "長打率", "OPS",
}

// BattingWorkbook writes the full batting leaderboard to a workbook.
func (s *ExportService) BattingWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	stats, err := s.batting.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "打撃成績"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range battingExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, st := range stats {
		name := ""
		grade := 0
		uniform := ""
		if st.Member != nil {
			name = st.Member.Name
			grade = st.Member.Grade
			if st.Member.UniformNumber != nil {
				uniform = fmt.Sprintf("%d", *st.Member.UniformNumber)
			}
		}
		period := ""
		if st.Period != nil {
			period = *st.Period
		}

		values := []interface{}{
			name, grade, uniform, period, st.Games, st.PlateAppearances,
			st.AtBats, st.Runs, st.Hits, st.Doubles, st.Triples, st.HomeRuns,
			st.TotalBases, st.RBIs, st.StolenBases, st.SacrificeBunts,
			st.SacrificeFlies, st.Walks, st.Strikeouts, st.Errors,
			rateCell(st.BattingAvg), rateCell(st.OnBasePercentage),
			rateCell(st.SluggingPercentage), rateCell(st.OPS),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("batting workbook exported", zap.Int("rows", len(stats)))
	return buf, nil
}

// rateCell leaves missing rates blank instead of writing zero.
func rateCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
