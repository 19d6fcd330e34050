package handler

import (
	"context"
	"net/http"
	"time"

	"linkhub/internal/model"
	"linkhub/internal/mq"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TrackHandler records profile views and link clicks
type TrackHandler struct {
	aggregator service.AggregatorInterface
	traffic    service.TrafficServiceInterface
	mqProducer mq.ProducerInterface
}

// NewTrackHandler creates a new TrackHandler. traffic and mqProducer are
// optional; with a producer traffic stats are fed through RocketMQ, without
// one they are recorded in-process.
func NewTrackHandler(
	aggregator service.AggregatorInterface,
	traffic service.TrafficServiceInterface,
	mqProducer mq.ProducerInterface,
) *TrackHandler {
	return &TrackHandler{
		aggregator: aggregator,
		traffic:    traffic,
		mqProducer: mqProducer,
	}
}

// TrackView handles POST /track-view
// @Summary Record a profile view
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body model.RequestMeta false "Client metadata"
// @Success 200 {object} MessageResponse
// @Router /track-view [post]
func (h *TrackHandler) TrackView(c *gin.Context) {
	meta := requestMeta(c)

	if err := h.aggregator.RecordView(c.Request.Context(), meta); err != nil {
		respondError(c, err, "track view")
		return
	}

	h.publish(c, &model.TrafficEvent{
		Kind:       model.TrafficKindView,
		ClientIP:   meta.IP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
		OccurredAt: time.Now(),
	})

	respondOK(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: "View tracked successfully",
	})
}

// TrackClick handles POST /track-click/:linkId
// @Summary Record a link click
// @Tags tracking
// @Accept json
// @Produce json
// @Param linkId path string true "Link ID"
// @Param request body model.RequestMeta false "Client metadata"
// @Success 200 {object} TrackClickResponse
// @Failure 404 {object} ErrorResponse
// @Router /track-click/{linkId} [post]
func (h *TrackHandler) TrackClick(c *gin.Context) {
	linkID := c.Param("linkId")
	meta := requestMeta(c)

	link, err := h.aggregator.RecordClick(c.Request.Context(), linkID, meta)
	if err != nil {
		respondError(c, err, "track click")
		return
	}

	h.publish(c, &model.TrafficEvent{
		Kind:       model.TrafficKindClick,
		LinkID:     linkID,
		ClientIP:   meta.IP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
		OccurredAt: time.Now(),
	})

	respondOK(c, http.StatusOK, TrackClickResponse{
		Success: true,
		Message: "Click tracked successfully",
		Link:    link,
	})
}

// publish hands the event to RocketMQ in the background, or records it
// directly when there is no producer or the send fails
func (h *TrackHandler) publish(c *gin.Context, event *model.TrafficEvent) {
	ctx := context.WithoutCancel(c.Request.Context())

	if h.mqProducer != nil {
		go func() {
			if err := h.mqProducer.SendTrackEvent(ctx, mq.NewTrackEventMessage(event)); err != nil {
				log.Error().Err(err).Str("kind", string(event.Kind)).Msg("Failed to send track event to MQ")
				h.record(ctx, event)
			}
		}()
		return
	}

	if h.traffic != nil {
		go h.record(ctx, event)
	}
}

func (h *TrackHandler) record(ctx context.Context, event *model.TrafficEvent) {
	if h.traffic == nil {
		return
	}
	if err := h.traffic.RecordTraffic(ctx, event); err != nil {
		log.Error().Err(err).Str("kind", string(event.Kind)).Msg("Failed to record traffic")
	}
}

// requestMeta reads the optional JSON body and fills missing fields from the
// request itself. A malformed body is treated as empty.
func requestMeta(c *gin.Context) model.RequestMeta {
	var meta model.RequestMeta
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&meta); err != nil {
			log.Debug().Err(err).Msg("Ignoring unreadable tracking body")
			meta = model.RequestMeta{}
		}
	}

	if meta.UserAgent == "" {
		meta.UserAgent = c.Request.UserAgent()
	}
	if meta.IP == "" {
		meta.IP = c.ClientIP()
	}
	if meta.Referrer == "" {
		meta.Referrer = c.Request.Referer()
	}
	return meta
}
