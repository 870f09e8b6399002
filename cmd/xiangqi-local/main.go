package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"go.uber.org/zap"
	"xiangqi/internal/config"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start() // 不阻塞
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 命令行参数覆盖配置文件
	flag.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address")
	flag.StringVar(&cfg.WebDir, "web", cfg.WebDir, "directory with index.html / js / svg")
	flag.StringVar(&cfg.SaveDir, "saves", cfg.SaveDir, "directory for save files (default: XDG data dir)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.BoolVar(&cfg.Development, "dev", cfg.Development, "development logging")
	flag.BoolVar(&cfg.OpenBrowser, "open", cfg.OpenBrowser, "open the default browser on start")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	h := httpserver.NewHandler(game.NewManager(logger), cfg, logger)
	mux := httpserver.NewMux(h, cfg.WebDir)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logger.Fatal("listen failed", zap.String("addr", cfg.ListenAddr), zap.Error(err))
	}
	logger.Info("listening", zap.String("addr", ln.Addr().String()), zap.String("web", cfg.WebDir))

	if cfg.OpenBrowser {
		_, port, _ := net.SplitHostPort(ln.Addr().String())
		go func() {
			time.Sleep(100 * time.Millisecond)
			if err := openBrowser("http://127.0.0.1:" + port + "/"); err != nil {
				logger.Warn("open browser failed", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	if err := srv.Serve(ln); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
