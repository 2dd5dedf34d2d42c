package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/repository"
	"harvestladder/pkg/discord"
)

// NotificationService handles rendering and delivery: scanner hits go to
// Discord, plan summaries go out as HTML email. It does not compute
// anything - hits and plans are passed in as domain objects.
type NotificationService interface {
	NotifyHits(ctx context.Context, hits []domain.HarvestHit) error
	SendPlanSummaryEmail(ctx context.Context, details PlanDetails) error
	// GeneratePlanSummaryEmail returns the subject and HTML body. Split
	// out so it can be previewed and tested without sending.
	GeneratePlanSummaryEmail(details PlanDetails) (string, string)
}

type notificationServiceHandler struct {
	DiscordClient   *discord.Client
	EmailRepository repository.EmailRepository
	ToEmail         string
}

func NewNotificationService(
	discordClient *discord.Client,
	emailRepository repository.EmailRepository,
	toEmail string,
) NotificationService {
	return &notificationServiceHandler{
		DiscordClient:   discordClient,
		EmailRepository: emailRepository,
		ToEmail:         toEmail,
	}
}

const embedColorGreen = 0x2ecc71

func (h *notificationServiceHandler) NotifyHits(ctx context.Context, hits []domain.HarvestHit) error {
	log := logger.FromContext(ctx)

	if len(hits) == 0 {
		return nil
	}
	if h.DiscordClient == nil {
		log.Warn("no discord client configured, dropping hit notifications")
		return nil
	}

	embeds := make([]discord.Embed, 0, len(hits))
	for _, hit := range hits {
		embeds = append(embeds, discord.Embed{
			Title: fmt.Sprintf("%s reached rung %d target", hit.Symbol, hit.RungIndex),
			Color: embedColorGreen,
			Fields: []discord.EmbedField{
				{Name: "Target", Value: fmt.Sprintf("$%.2f", hit.TargetPrice), Inline: true},
				{Name: "Current", Value: fmt.Sprintf("$%.2f", hit.CurrentPrice), Inline: true},
				{Name: "Sell", Value: fmt.Sprintf("%d shares", hit.SharesToSell), Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return h.DiscordClient.SendMessage(discord.Message{
		Content: fmt.Sprintf("%d harvest target(s) crossed", len(hits)),
		Embeds:  embeds,
	})
}

func (h *notificationServiceHandler) SendPlanSummaryEmail(ctx context.Context, details PlanDetails) error {
	log := logger.FromContext(ctx)

	if h.EmailRepository == nil || h.ToEmail == "" {
		log.Warn("no email destination configured, dropping plan summary")
		return nil
	}

	subject, body := h.GeneratePlanSummaryEmail(details)
	err := h.EmailRepository.SendEmail(h.ToEmail, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send plan summary for %s: %w", details.Plan.Symbol, err)
	}

	return nil
}

func (h *notificationServiceHandler) GeneratePlanSummaryEmail(details PlanDetails) (string, string) {
	plan := details.Plan
	subject := fmt.Sprintf("Harvest plan for %s (%d rungs)", plan.Symbol, len(details.Rungs))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Harvest plan for %s</h2>", plan.Symbol))
	b.WriteString(fmt.Sprintf(
		"<p>As of %s at $%.2f: %d shares, floor $%.2f, H=%.2f%%, annual vol %.1f%%.</p>",
		plan.AsOfDate.Format("2006-01-02"),
		plan.PriceAsOf,
		plan.SharesInitial,
		plan.V0Floor,
		plan.HThreshold*100,
		plan.AnnualVol*100,
	))
	if plan.TerminatedEarly {
		b.WriteString("<p><em>The ladder terminated early: a later harvest would round to zero shares.</em></p>")
	}

	b.WriteString("<table border=\"1\" cellpadding=\"4\" cellspacing=\"0\">")
	b.WriteString("<tr><th>#</th><th>Target</th><th>Sell</th><th>Keep</th><th>Harvest</th><th>Cumulative</th><th>Days</th></tr>")
	for _, r := range details.Rungs {
		days := "-"
		if r.ExpectedDays != nil {
			days = fmt.Sprintf("%.0f", *r.ExpectedDays)
		}
		b.WriteString(fmt.Sprintf(
			"<tr><td>%d</td><td>$%.2f</td><td>%d</td><td>%d</td><td>$%.2f</td><td>$%.2f</td><td>%s</td></tr>",
			r.RungIndex,
			r.TargetPrice,
			r.SharesSoldPlanned,
			r.SharesAfterPlanned,
			r.GrossHarvestPlanned,
			r.CumulativeHarvestPlanned,
			days,
		))
	}
	b.WriteString("</table>")

	if plan.Status == model.PlanStatus_Active {
		b.WriteString("<p>This plan is active; you will be alerted when the next rung's target is crossed.</p>")
	}

	return subject, b.String()
}
