package http

import (
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

func toProfile(p domain.Profile, pic string) campussdk.Profile {
	return campussdk.Profile{
		ID:          p.ID,
		Email:       p.Email,
		Name:        p.Name,
		Degree:      p.Degree,
		Year:        p.Year,
		Project:     p.Project,
		ProjectDate: p.ProjectDate,
		OldProject:  p.OldProject,
		ProfilePic:  pic,
	}
}

func toMessages(msgs []domain.Message, imagePath func(string) string) []campussdk.Message {
	out := make([]campussdk.Message, 0, len(msgs))
	for _, m := range msgs {
		cm := campussdk.Message{
			ID:            m.ID,
			SenderEmail:   m.SenderEmail,
			ReceiverEmail: m.ReceiverEmail,
			Text:          m.Text,
			CreatedAt:     m.CreatedAt,
		}
		if m.Image != "" {
			img := imagePath(m.Image)
			cm.Image = &img
		}
		out = append(out, cm)
	}
	return out
}
