package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"balatro-seed-engine/internal/search"
	"balatro-seed-engine/pkg/balatro"
	"balatro-seed-engine/pkg/gamestate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// ScanServer runs synchronous seed scans over HTTP and streams one seed's
// tag draws over a websocket.
type ScanServer struct {
	scanner  *search.Scanner
	jobs     JobStore
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	progress map[string]chan string
}

// JobStore is an alias of search.JobStore. main does not configure one,
// so the server runs with a nil job store.
type JobStore = search.JobStore

func NewScanServer(store search.MatchStore, producer search.MatchProducer, jobs JobStore) *ScanServer {
	return &ScanServer{
		scanner:  search.NewScanner(store, producer),
		jobs:     jobs,
		upgrader: upgrader,
		progress: make(map[string]chan string),
	}
}

// handleScanRequest runs a synchronous scan over the requested range with a
// target voucher criteria and returns every matching seed.
func (s *ScanServer) handleScanRequest(c *gin.Context) {
	var req struct {
		StartIndex uint64 `json:"start_index"`
		EndIndex   uint64 `json:"end_index"`
		Ante       int    `json:"ante"`
		Workers    int    `json:"workers"`
		Voucher    string `json:"voucher"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	criteria := voucherCriteria(req.Voucher, req.Ante)
	matches, err := s.scanner.Scan(c.Request.Context(), search.ScanConfig{
		StartIndex: req.StartIndex,
		EndIndex:   req.EndIndex,
		Ante:       req.Ante,
		Workers:    req.Workers,
		Criteria:   criteria,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"matches": matches, "count": len(matches)})
}

// voucherCriteria returns a search.Criteria matching seeds whose first
// voucher offer at ante resolves to the named voucher.
func voucherCriteria(name string, ante int) search.Criteria {
	return func(g *gamestate.GameState) (bool, string) {
		v, err := g.NextVoucherFromAtAnte(ante)
		if err != nil {
			return false, ""
		}
		if v.String() == name {
			return true, fmt.Sprintf("voucher=%s ante=%d", v, ante)
		}
		return false, ""
	}
}

// handleTagWebSocket streams the tag drawn for each ante, starting at 1,
// for a single seed, until the client disconnects or ante 39 is reached.
func (s *ScanServer) handleTagWebSocket(c *gin.Context) {
	seed := c.Param("seed")
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	g := gamestate.New(seed, 1)
	for ante := 1; ante <= 39; ante++ {
		tag, err := g.NextTagFromAtAnte(ante)
		if err != nil {
			_ = conn.WriteJSON(gin.H{"type": "error", "message": err.Error()})
			return
		}
		if err := conn.WriteJSON(gin.H{"type": "tag", "ante": ante, "tag": tag.String()}); err != nil {
			return
		}
	}
}

func main() {
	router := gin.Default()

	var matchStore search.MatchStore
	var jobStore search.JobStore
	var producer search.MatchProducer

	if host := os.Getenv("CLICKHOUSE_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("CLICKHOUSE_PORT"))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := search.NewClickHouseMatchStore(ctx, search.ClickHouseConfig{
			Host:     host,
			Port:     port,
			Database: os.Getenv("CLICKHOUSE_DATABASE"),
			Username: os.Getenv("CLICKHOUSE_USERNAME"),
			Password: os.Getenv("CLICKHOUSE_PASSWORD"),
		})
		cancel()
		if err != nil {
			log.Printf("clickhouse unavailable, matches will not be persisted: %v", err)
		} else {
			if err := store.CreateTables(context.Background()); err != nil {
				log.Printf("failed to create clickhouse tables: %v", err)
			}
			matchStore = store
		}
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		p, err := search.NewKafkaMatchProducer(search.KafkaMatchProducerConfig{
			Brokers: []string{brokers},
			Topic:   "seedscan.matches",
		})
		if err != nil {
			log.Printf("kafka unavailable, matches will not be published: %v", err)
		} else {
			producer = p
		}
	}

	server := NewScanServer(matchStore, producer, jobStore)

	router.POST("/api/scan", server.handleScanRequest)
	router.GET("/ws/tags/:seed", server.handleTagWebSocket)
	router.GET("/api/vouchers", func(c *gin.Context) {
		names := make([]string, len(balatro.AllVouchers))
		for i, v := range balatro.AllVouchers {
			names[i] = v.String()
		}
		c.JSON(200, gin.H{"vouchers": names})
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("shutting down seedscan server...")
		if producer != nil {
			_ = producer.Close()
		}
		os.Exit(0)
	}()

	port := os.Getenv("SEEDSCAN_PORT")
	if port == "" {
		port = "3003"
	}

	log.Printf("seedscan server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
