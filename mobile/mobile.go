package mobile

import (
	"net/http"

	"go.uber.org/zap"
	"xiangqi/internal/config"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// webDir: physical path to the extracted web assets
// saveDir: writable directory for save slots
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, saveDir string, port string) {
	cfg := config.DefaultConfig
	cfg.ListenAddr = "127.0.0.1:" + port
	cfg.WebDir = webDir
	cfg.SaveDir = saveDir
	cfg.OpenBrowser = false

	logger, err := cfg.NewLogger()
	if err != nil {
		logger = zap.NewNop()
	}

	h := httpserver.NewHandler(game.NewManager(logger), &cfg, logger)
	mux := httpserver.NewMux(h, cfg.WebDir)

	// 后台运行，不阻塞 Android UI 线程
	go func() {
		if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()
}
