package main

import (
	"fmt"
	"net/http"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"

	"taskhub/auth"
	"taskhub/config"
	"taskhub/controllers"
	"taskhub/database"
	"taskhub/repositories"
	"taskhub/services"
)

// requestLogger logs every request after it has been handled.
func requestLogger(logger *zap.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()

		chain.ProcessFilter(req, resp)

		logger.Info("Request",
			zap.String("client_ip", req.Request.RemoteAddr),
			zap.String("method", req.Request.Method),
			zap.String("path", req.Request.URL.Path),
			zap.Int("status_code", resp.StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", req.Request.UserAgent()),
		)
	}
}

func main() {
	// Initialize configs
	config.InitConfig()

	var logger *zap.Logger
	switch config.AppConfig.LogLevel {
	case "debug":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync() // Make sure the buffer is flushed before the program exits

	auth.SetSigningKey([]byte(config.AppConfig.JwtSecret))

	db := database.InitDB()

	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	bookRepo := repositories.NewBookRepository()

	tokenTTL := time.Duration(config.AppConfig.TokenTTLMinutes) * time.Minute
	authService := services.NewAuthService(userRepo, tokenTTL)
	todoService := services.NewTodoService(todoRepo)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(userRepo, todoRepo)
	bookService := services.NewBookService(bookRepo)

	container := restful.NewContainer()
	container.Filter(requestLogger(logger))

	// CORS for the browser frontend
	cors := restful.CrossOriginResourceSharing{
		AllowedDomains: config.AppConfig.AllowedOrigins,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		CookiesAllowed: true,
		Container:      container,
	}
	container.Filter(cors.Filter)
	container.Filter(container.OPTIONSFilter)

	// Panics become plain 500s with no internal detail.
	container.DoNotRecover(false)
	container.RecoverHandler(func(panicReason interface{}, w http.ResponseWriter) {
		logger.Error("Recovered from panic", zap.Any("reason", panicReason))
		w.Header().Set("Content-Type", restful.MIME_JSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal server error"}`))
	})

	register := func(ctl interface {
		RegisterRoutes(ws *restful.WebService)
	}) {
		ws := new(restful.WebService)
		ctl.RegisterRoutes(ws)
		container.Add(ws)
	}

	register(controllers.NewAuthController(authService))
	register(controllers.NewTodoController(todoService))
	register(controllers.NewAdminController(adminService))
	register(controllers.NewUserController(userService))
	register(controllers.NewBookController(bookService))
	register(controllers.NewHealthController())

	// OpenAPI document for the registered services
	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     "/apidocs.json",
	}))

	addr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	logger.Info("Starting server", zap.String("addr", addr))
	server := &http.Server{Addr: addr, Handler: container}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
