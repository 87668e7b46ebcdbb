package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/clients/fixturesclient"
	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg            *config.Config
	Source         predictions.Source
	FixturesClient *fixturesclient.Client
	Logger         *zap.Logger
	Ctx            context.Context
}

// SourceFor returns the configured prediction source, or a CSV source for
// an explicit --data override path
func (a *AppContext) SourceFor(dataPath string) predictions.Source {
	if dataPath == "" {
		return a.Source
	}
	return predictions.NewCSVSource(dataPath)
}
