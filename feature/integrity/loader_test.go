package integrity

import (
	"testing"

	"spell-miner/feature/spells/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc, db := setupService(t)
	feature := NewFeature(svc.source, svc.store, svc.failures, db, models.DefaultRegistry(), zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
