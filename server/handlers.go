package server

import (
	"context"
	"log"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/cache"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/feed"
)

func (s *Server) handleServiceAlerts(w http.ResponseWriter, r *http.Request) {
	s.serveFeed(w, r, s.assembleServiceAlerts)
}

func (s *Server) handleTripUpdates(w http.ResponseWriter, r *http.Request) {
	s.serveFeed(w, r, s.assembleTripUpdates)
}

func (s *Server) handleVehiclePositions(w http.ResponseWriter, r *http.Request) {
	s.serveFeed(w, r, s.assembleVehiclePositions)
}

type assembleFunc func(ctx context.Context) ([]*gtfsrtpb.FeedEntity, error)

// serveFeed runs the request pipeline: cache lookup, snapshot fetch,
// assembly, envelope, serialization, cache store. Cache failures degrade to
// uncached serving and never fail the request.
func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request, assemble assembleFunc) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	format := feed.ParseFormat(r.URL.Query().Get("f"))
	key := cache.Key(r.URL.Path, string(format))

	if s.store != nil {
		buf, ok, err := s.store.Get(key)
		if err != nil {
			log.Printf("cache get %s: %v", key, err)
		} else if ok {
			writeFeedResponse(w, format, buf)
			return
		}
	}

	entities, err := assemble(r.Context())
	if err != nil {
		log.Printf("assemble %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	msg := feed.NewFeedMessage(entities, time.Now())
	buf, err := feed.Render(msg, format)
	if err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if s.store != nil {
		ttl := time.Duration(s.cfg.FeedTTLSeconds(r.URL.Path)) * time.Second
		if err := s.store.Set(key, buf, ttl); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}
	writeFeedResponse(w, format, buf)
}

func writeFeedResponse(w http.ResponseWriter, format feed.Format, buf []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(buf)
}

func (s *Server) assembleServiceAlerts(ctx context.Context) ([]*gtfsrtpb.FeedEntity, error) {
	alerts, periods, entities, err := s.lake.FetchServiceAlerts(ctx)
	if err != nil {
		return nil, err
	}
	return feed.AssembleServiceAlerts(alerts, periods, entities)
}

func (s *Server) assembleTripUpdates(ctx context.Context) ([]*gtfsrtpb.FeedEntity, error) {
	updates, stopTimes, err := s.lake.FetchTripUpdates(ctx)
	if err != nil {
		return nil, err
	}
	return feed.AssembleTripUpdates(updates, stopTimes)
}

func (s *Server) assembleVehiclePositions(ctx context.Context) ([]*gtfsrtpb.FeedEntity, error) {
	positions, err := s.lake.FetchVehiclePositions(ctx)
	if err != nil {
		return nil, err
	}
	return feed.AssembleVehiclePositions(positions)
}
