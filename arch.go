//go:build archgo
// +build archgo

// Package main defines architectural rules using arch-go.
// Run with: arch-go
//
// Install: go install github.com/fdaines/arch-go@latest
package main

import (
	"github.com/fdaines/arch-go/api/configuration"
)

// ArchitectureRules defines the layering of nba: builders are pure, only the
// client package talks to a cluster.
func ArchitectureRules() *configuration.Config {
	return &configuration.Config{
		Version: 1,
		Threshold: &configuration.Threshold{
			Compliance: &configuration.ThresholdRule{
				Rate:  80,
				Scope: "package",
			},
			Coverage: &configuration.ThresholdRule{
				Rate:  80,
				Scope: "package",
			},
		},

		DependenciesRules: []*configuration.DependenciesRule{
			// The identity resolver is the leaf every builder depends on
			{
				Package: "github.com/spechtlabs/nba/pkg/identity",
				ShouldNotDependsOn: []string{
					"github.com/spechtlabs/nba/pkg/trust",
					"github.com/spechtlabs/nba/pkg/workload",
					"github.com/spechtlabs/nba/pkg/admission",
					"github.com/spechtlabs/nba/pkg/manifest",
				},
			},

			// Builders never perform I/O
			{
				Package: "github.com/spechtlabs/nba/pkg/{trust,workload,admission,manifest}",
				ShouldNotDependsOn: []string{
					"net/http",
					"os",
					"k8s.io/client-go/rest",
					"github.com/spechtlabs/nba/pkg/client/**",
				},
			},

			// Workloads are built from the certificate, never the other way around
			{
				Package: "github.com/spechtlabs/nba/pkg/trust",
				ShouldNotDependsOn: []string{
					"github.com/spechtlabs/nba/pkg/workload",
					"github.com/spechtlabs/nba/pkg/admission",
				},
			},

			// Internal packages should not be imported by external cmd packages
			{
				Package: "github.com/spechtlabs/nba/internal/**",
				ShouldNotDependsOn: []string{
					"github.com/spechtlabs/nba/cmd/**",
				},
			},
		},

		ContentRules: []*configuration.ContentsRule{
			// Interfaces should be in interface.go or *_interface.go files
			{
				Package:                     "github.com/spechtlabs/nba/pkg/**",
				ShouldOnlyContainInterfaces: true,
				InFiles:                     []string{"interface.go", "interfaces.go", "*_interface.go"},
			},

			// Mock implementations should be in mock/ subdirectories
			{
				Package:                  "github.com/spechtlabs/nba/**/mock",
				ShouldOnlyContainStructs: true,
			},
		},

		FunctionRules: []*configuration.FunctionsRule{
			{
				Package:  "github.com/spechtlabs/nba/pkg/**",
				MaxLines: 60,
			},
		},
	}
}
