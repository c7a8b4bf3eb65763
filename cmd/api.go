package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/laisky-portfolio-api/internal/web"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/controller"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dao"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/service"
	mongoLib "github.com/Laisky/laisky-portfolio-api/library/db/mongo"
	"github.com/Laisky/laisky-portfolio-api/library/jwt"
	"github.com/Laisky/laisky-portfolio-api/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `portfolio REST API service`,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		runAPI(ctx)
	},
}

func runAPI(ctx context.Context) {
	logger := log.Logger.Named("api")

	db, err := mongoLib.NewDB(ctx, logger,
		mongoLib.DialInfo{
			Addr:   gconfig.Shared.GetString("settings.db.portfolio.addr"),
			DBName: gconfig.Shared.GetString("settings.db.portfolio.db"),
			User:   gconfig.Shared.GetString("settings.db.portfolio.user"),
			Pwd:    gconfig.Shared.GetString("settings.db.portfolio.pwd"),
		})
	if err != nil {
		logger.Panic("connect to db", zap.Error(err))
	}
	defer db.Close(ctx) //nolint:errcheck

	jwtLib, err := jwt.New([]byte(gconfig.Shared.GetString("settings.secret")))
	if err != nil {
		logger.Panic("setup jwt", zap.Error(err))
	}

	svc, err := service.New(ctx, logger, dao.New(logger, db), jwtLib)
	if err != nil {
		logger.Panic("setup service", zap.Error(err))
	}

	ctl := controller.New(logger, svc, jwtLib)
	debug := gconfig.Shared.GetBool("debug")
	server := web.NewServer(logger, ctl, debug)
	web.RunServer(gconfig.Shared.GetString("listen"), server)
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
