package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/adapter/github"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/grpc"
	apihttp "github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http/limiter"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.Fatalf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if err := configureLogger(l, conf); err != nil {
		l.Fatalf("couldn't configure logger: %v", err)
	}
	if conf.GithubAPIToken == "" {
		l.Warn("GITHUB_TOKEN is not set, github api rate limits are lower")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	githubHTTPClient := limiter.NewHTTPDoer(
		&http.Client{Timeout: conf.GithubHTTPTimeout},
		conf.GithubAPIRateLimit,
		conf.GithubAPIRateBurst,
	)
	githubClient := github.NewClient(
		githubHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubRawAddress,
		conf.GithubReadmeBranch,
		conf.GithubAPIToken,
	)
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	model, err := newDifficultyModel(conf)
	if err != nil {
		l.Fatalf("couldn't create difficulty model: %v", err)
	}
	l.Infof("using %s difficulty classifier", conf.ClassifierBackend)

	userStore, storeCloser, err := newStore(ctx, conf, l.WithField("component", "store"))
	if err != nil {
		l.Fatalf("couldn't create %s store: %v", conf.StoreBackend, err)
	}
	l.Infof("using %s store", conf.StoreBackend)

	calculator := app.NewCalculator(
		githubCachedClient,
		app.NewClassifier(model, l.WithField("component", "classifier")),
		conf.EnrichmentFanOut,
		conf.EnrichmentTimeout,
		l.WithField("component", "calculator"),
	)
	service := app.NewService(
		githubCachedClient,
		calculator,
		userStore,
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
	)

	gin.SetMode(gin.ReleaseMode)
	mux := apihttp.NewMux(service, apihttp.MuxConfig{
		Timeout:      conf.HTTPHandlerTimeout,
		AllowOrigins: conf.CORSAllowOrigins,
	}, l.WithField("component", "mux"))
	server := apihttp.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(service),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		g.Go(func() error {
			return grpcServer.Run(gctx)
		})
	}

	runErr := g.Wait()
	if err := closeAll(storeCloser); err != nil {
		l.Errorf("closing resources: %v", err)
	}
	if runErr != nil {
		l.Fatalf("server returned error: %v", runErr)
	}
}

func configureLogger(l *logrus.Logger, conf Config) error {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	l.SetLevel(level)

	if conf.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
