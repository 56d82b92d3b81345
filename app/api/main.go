package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/database/mongoclient"
	"github.com/x-xyz/ensapi/base/database/redisclient"
	"github.com/x-xyz/ensapi/base/env"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/metrics"
	bValidator "github.com/x-xyz/ensapi/base/validator"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/domain/namespace"
	mmiddleware "github.com/x-xyz/ensapi/middleware"
	"github.com/x-xyz/ensapi/service/cache/provider"
	"github.com/x-xyz/ensapi/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ensapi/service/cache/provider/redis"
	"github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/query"
	"github.com/x-xyz/ensapi/service/rainbow"
	"github.com/x-xyz/ensapi/service/redis"
	hc_delivery "github.com/x-xyz/ensapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/ensapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ensapi/stores/healthcheck/usecase"
	resolution_delivery "github.com/x-xyz/ensapi/stores/resolution/delivery/http"
	resolution_repository "github.com/x-xyz/ensapi/stores/resolution/repository"
	resolution_usecase "github.com/x-xyz/ensapi/stores/resolution/usecase"
)

type networkCfg struct {
	ChainId  domain.ChainId `mapstructure:"chainId"`
	RpcUrl   string         `mapstructure:"rpcUrl"`
	Throttle int            `mapstructure:"throttle"`
}

func init() {
	pflag.String("config", env.ConfigFile(), "path of the yaml config")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// mustIndexedChains reads indexing.plugins. An unknown plugin name is a
// configuration error.
func mustIndexedChains() ens.IndexedChains {
	plugins := map[string][]domain.ChainId{}
	if err := viper.UnmarshalKey("indexing.plugins", &plugins); err != nil {
		log.Log().WithField("err", err).Panic("invalid indexing.plugins")
	}
	indexed := ens.IndexedChains{}
	for name, chainIds := range plugins {
		plugin := ens.Plugin(name)
		if !plugin.IsValid() {
			log.Log().WithField("plugin", name).Panic("unknown indexing plugin")
		}
		indexed[plugin] = chainIds
	}
	return indexed
}

// mustRpcUrls reads networks and fails unless every chain the namespace
// references has an endpoint.
func mustRpcUrls(ns *namespace.Namespace) (map[domain.ChainId]string, map[domain.ChainId]int) {
	networks := map[string]networkCfg{}
	if err := viper.UnmarshalKey("networks", &networks); err != nil {
		log.Log().WithField("err", err).Panic("invalid networks")
	}
	urls := map[domain.ChainId]string{}
	throttles := map[domain.ChainId]int{}
	for name, n := range networks {
		if n.ChainId <= 0 || n.RpcUrl == "" {
			log.Log().WithField("network", name).Panic("network needs chainId and rpcUrl")
		}
		urls[n.ChainId] = n.RpcUrl
		if n.Throttle > 0 {
			throttles[n.ChainId] = n.Throttle
		}
	}
	for _, chainId := range ns.Chains() {
		if _, ok := urls[chainId]; !ok {
			log.Log().WithFields(log.Fields{
				"namespace": ns.Id,
				"chainId":   chainId,
			}).Panic("no rpc configured for namespace chain")
		}
	}
	return urls, throttles
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	ns, err := namespace.Get(namespace.Id(viper.GetString("namespace")))
	if err != nil {
		context.WithFields(log.Fields{
			"err":       err,
			"namespace": viper.GetString("namespace"),
		}).Panic("namespace.Get failed")
	}
	indexed := mustIndexedChains()
	rpcUrls, throttles := mustRpcUrls(ns)

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		EnableSSL:          viper.GetBool("mongo.enableSSL"),
		PoolSizeMultiplier: 2,
		SecondaryPreferred: true,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init Redis service, optional
	var redisService redis.Service
	var sharedHttpCache provider.Provider
	if uri := viper.GetString("redis_cache.uri"); uri != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		redisService = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
		sharedHttpCache = redisCache.NewRedis(redisService)
	}

	// init chain client
	context.Info("init chain client")
	chainClient, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:  rpcUrls,
		Throttle: throttles,
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}

	// resolution
	index := resolution_usecase.NewIndexSource(
		resolution_repository.NewResolverRecordsRepo(q),
		resolution_repository.NewDomainResolverRepo(q),
		resolution_repository.NewPrimaryNameRepo(q),
	)
	rpc := resolution_usecase.NewRpcSource(chainClient)
	resolution := resolution_usecase.New(&resolution_usecase.Config{
		Namespace: ns,
		Indexed:   indexed,
		Timeout:   viper.GetDuration("resolution.timeout"),
		Parallel:  viper.GetInt("resolution.parallel"),
	}, index, rpc)

	healer := rainbow.NewClient(&rainbow.ClientCfg{
		HttpClient: http.Client{},
		Url:        viper.GetString("rainbow.url"),
		Timeout:    viper.GetDuration("rainbow.timeout"),
		Redis:      redisService,
	})

	hc := hc_usecase.New(hc_repo.New(mongoClient, redisService))
	httpCache := mmiddleware.NewHttpCache(primitive.NewPrimitive("httpCache", 64), sharedHttpCache)

	hc_delivery.New(e, hc, string(ns.Id))
	resolution_delivery.New(e, resolution, healer, httpCache, viper.GetDuration("http.cacheTtl"))

	context.WithFields(log.Fields{
		"namespace": ns.Id,
		"indexed":   indexed,
	}).Info("resolution ready")

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
