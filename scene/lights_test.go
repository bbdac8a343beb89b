package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
)

func TestConfigureLightsDefaultScene(t *testing.T) {
	rec := r3d.NewUniformRecorder()
	require.NoError(t, ConfigureLights(rec, config.Default().Lights))

	v := rec.Values
	assert.Equal(t, true, v["bUseLighting"])
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, v["directionalLight.direction"])
	assert.Equal(t, true, v["directionalLight.bActive"])

	assert.Equal(t, mgl32.Vec3{0, 8, 4}, v["pointLights[0].position"])
	assert.Equal(t, float32(0.032), v["pointLights[0].quadratic"])
	assert.Equal(t, true, v["pointLights[0].bActive"])
	assert.Equal(t, true, v["pointLights[1].bActive"])
	assert.Equal(t, false, v["pointLights[2].bActive"])
	assert.NotContains(t, v, "pointLights[3].bActive")
}

func TestConfigureLightsIdempotent(t *testing.T) {
	lights := config.Default().Lights

	once := r3d.NewUniformRecorder()
	require.NoError(t, ConfigureLights(once, lights))

	twice := r3d.NewUniformRecorder()
	require.NoError(t, ConfigureLights(twice, lights))
	require.NoError(t, ConfigureLights(twice, lights))

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestConfigureLightsStaleSlotsCleared(t *testing.T) {
	rec := r3d.NewUniformRecorder()
	require.NoError(t, ConfigureLights(rec, config.Default().Lights))
	require.NoError(t, ConfigureLights(rec, config.Lights{}))

	assert.Equal(t, false, rec.Values["directionalLight.bActive"])
	for i := 0; i < config.MaxPointLights; i++ {
		assert.Equal(t, false, rec.Values[r3d.LightField(r3d.PointLightBlock(i), "bActive")])
	}
}

func TestLightsFromConfig(t *testing.T) {
	lights, err := LightsFromConfig(config.Lights{
		Directional: &config.DirectionalLight{Direction: mgl32.Vec3{0, -3, 4}},
		Points:      []config.PointLight{{Position: mgl32.Vec3{1, 2, 3}, Disabled: true}},
	})
	require.NoError(t, err)
	require.Len(t, lights, 1+config.MaxPointLights)

	assert.Equal(t, DirectionalLight, lights[0].Kind)
	assert.InDelta(t, 1.0, lights[0].Vector.Len(), 1e-6)
	assert.InDelta(t, -0.6, lights[0].Vector.Y(), 1e-6)
	assert.True(t, lights[0].Active)

	assert.Equal(t, PointLight, lights[1].Kind)
	assert.False(t, lights[1].Active)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, lights[1].Vector)

	_, err = LightsFromConfig(config.Lights{Points: make([]config.PointLight, config.MaxPointLights+1)})
	assert.Error(t, err)
}
