package server

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/catalog/internal/database"
	"github.com/mdouchement/catalog/internal/server/middlewares"
)

// DefaultReadyTimeout bounds the readiness probe against the database.
const DefaultReadyTimeout = 3 * time.Second

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	// ReadyTimeout bounds the readiness probe. Defaults to DefaultReadyTimeout.
	ReadyTimeout time.Duration
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	////////////
	// Router //
	////////////

	router := engine.Group("")

	//
	// generic handlers
	//
	version := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	}
	router.GET("/", version)
	router.GET("/version", version)

	//
	// item handlers
	//
	item := &item{
		db: ctrl.Database,
	}
	router.GET("/items", item.List)
	router.POST("/items", item.Create)
	router.GET("/items/:id", item.Get)
	router.PUT("/items/:id", item.Update)
	router.DELETE("/items/:id", item.Delete)

	//
	// health handlers
	//
	timeout := ctrl.ReadyTimeout
	if timeout <= 0 {
		timeout = DefaultReadyTimeout
	}
	health := &health{
		db:      ctrl.Database,
		timeout: timeout,
	}
	router.GET("/health/live", health.Live)
	router.GET("/health/ready", health.Ready)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
