package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/stretchr/testify/assert"
)

type healthReport struct {
	Status string `json:"status"`
	Checks []struct {
		Name      string `json:"name"`
		Status    string `json:"status"`
		Exception string `json:"exception"`
		Duration  string `json:"duration"`
	} `json:"checks"`
}

func TestRequestHealthLive(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/health/live").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Empty(t, r.Body.String())
	})
}

func TestRequestHealthReady(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/health/ready").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var v healthReport
		assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &v))

		assert.Equal(t, "Healthy", v.Status)
		if assert.Len(t, v.Checks, 1) {
			assert.Equal(t, "database", v.Checks[0].Name)
			assert.Equal(t, "Healthy", v.Checks[0].Status)
			assert.Equal(t, "None", v.Checks[0].Exception)
			assert.NotEmpty(t, v.Checks[0].Duration)
		}
	})
}

func TestRequestHealthReadyUnreachable(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	// Simulate an unreachable database.
	assert.NoError(t, ctrl.Database.Close())

	r.GET("/health/ready").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusServiceUnavailable, r.Code)

		var v healthReport
		assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &v))

		assert.Equal(t, "Unhealthy", v.Status)
		if assert.Len(t, v.Checks, 1) {
			assert.Equal(t, "database", v.Checks[0].Name)
			assert.Equal(t, "Unhealthy", v.Checks[0].Status)
			assert.NotEqual(t, "None", v.Checks[0].Exception)
		}
	})
}
