package usecase_test

import (
	"context"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func hoursPtr(h float64) *float64 { return &h }

func timePtr(t time.Time) *time.Time { return &t }

func makeBranch(id, name string) *domain.Branch {
	return &domain.Branch{ID: id, Name: name, Type: domain.BranchMain, SortingWindowHours: hoursPtr(6)}
}
