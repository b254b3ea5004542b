// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

type Services struct {
	AuthService       AuthService
	AttendanceService AttendanceService
	ReportingService  ReportingService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		AttendanceService: NewAttendanceService(storages.UserRepository, storages.TimeEntryRepository, logger),
		ReportingService:  NewReportingService(storages.UserRepository, storages.TimeEntryRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
