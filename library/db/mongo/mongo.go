// Package mongo provides a wrapper for the MongoDB client.
package mongo

import (
	"context"
	"net/url"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultHeartbeat  = 10 * time.Second
	healthCheckPeriod = 5 * time.Second
)

// DB exposes the handles the dao layer needs.
type DB interface {
	Close(ctx context.Context) error
	GetCol(colName string) *mongoLib.Collection
	CurrentDB() *mongoLib.Database
}

// DialInfo defines the MongoDB connection information.
type DialInfo struct {
	Addr,
	DBName,
	User,
	Pwd string
}

// db holds one long-lived client and relies on the driver for reconnects.
type db struct {
	logger   glog.Logger
	cli      *mongoLib.Client
	dialInfo DialInfo
	cancel   context.CancelFunc
}

// buildMongoURI builds a MongoDB connection URI from the given dial info.
func buildMongoURI(dialInfo DialInfo) string {
	uri := &url.URL{
		Scheme: "mongodb",
		Host:   dialInfo.Addr,
		Path:   "/" + dialInfo.DBName,
	}
	if dialInfo.User != "" || dialInfo.Pwd != "" {
		uri.User = url.UserPassword(dialInfo.User, dialInfo.Pwd)
	}

	return uri.String()
}

// NewDB connects to MongoDB and returns a DB handle.
//
// The client is created once; the caller owns its lifecycle and injects it
// into the dao layer. Connect and first ping are bounded so failures
// surface at startup, not on the first request.
func NewDB(ctx context.Context, logger glog.Logger, dialInfo DialInfo) (DB, error) {
	logger.Info("try to connect to mongodb",
		zap.String("addr", dialInfo.Addr),
		zap.String("db", dialInfo.DBName),
	)

	dialCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cli, err := mongoLib.Connect(dialCtx, options.Client().
		ApplyURI(buildMongoURI(dialInfo)).
		SetConnectTimeout(defaultTimeout).
		SetServerSelectionTimeout(defaultTimeout).
		SetHeartbeatInterval(defaultHeartbeat).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetMaxPoolSize(100).
		SetMaxConnIdleTime(300*time.Second),
	)
	if err != nil {
		return nil, errors.Wrap(err, "connect db")
	}

	if err = cli.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping db")
	}

	healthCtx, healthCancel := context.WithCancel(context.Background())
	d := &db{
		logger:   logger,
		cli:      cli,
		dialInfo: dialInfo,
		cancel:   healthCancel,
	}
	go d.runHealthCheck(healthCtx)

	return d, nil
}

// runHealthCheck pings periodically and logs when the server is unreachable.
// The driver recovers connections automatically when the server comes back.
func (d *db) runHealthCheck(ctx context.Context) {
	ticker := time.NewTicker(healthCheckPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), healthCheckPeriod)
		err := d.cli.Ping(pingCtx, readpref.Primary())
		cancel()

		if err != nil {
			d.logger.Warn("mongodb ping failed (driver will auto-recover)",
				zap.Error(err),
				zap.String("addr", d.dialInfo.Addr),
			)
		}
	}
}

// CurrentDB returns the database named in the dial info.
func (d *db) CurrentDB() *mongoLib.Database {
	return d.cli.Database(d.dialInfo.DBName)
}

// GetCol returns a collection handle by name.
func (d *db) GetCol(colName string) *mongoLib.Collection {
	return d.CurrentDB().Collection(colName)
}

// Close stops the health checker and disconnects the client.
func (d *db) Close(ctx context.Context) error {
	if d.cancel != nil {
		d.cancel()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	closeCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return d.cli.Disconnect(closeCtx)
}
