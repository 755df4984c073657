package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/finpulse/internal/domain/models"
)

func TestStatisticsService_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		repo    *stubRepo
		wantNil bool
		wantErr bool
	}{
		{
			name: "success",
			repo: &stubRepo{stats: &models.Statistics{Symbol: "IBM", AvgOpenPrice: 15, AvgClosePrice: 17, AvgVolume: 1500}},
		},
		{
			name:    "no data",
			repo:    &stubRepo{stats: nil},
			wantNil: true,
		},
		{
			name:    "error",
			repo:    &stubRepo{statsErr: errors.New("boom")},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStatisticsService(tc.repo)
			out, err := svc.GetStatistics(context.Background(), models.RecordFilter{Symbol: "IBM"})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got out=%+v", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantNil != (out == nil) {
				t.Fatalf("nil mismatch: out=%+v", out)
			}
		})
	}
}
