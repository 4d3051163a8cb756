package domain

import (
	"fmt"
	"strings"
)

// Card is the list-screen rendering of one record.
type Card struct {
	ID       int64
	Title    string
	Subtitle string
	Badges   []string
	Lines    []string
}

// Carded is implemented by records that render on a list screen.
type Carded interface {
	Card() Card
}

func badge(s Status) []string {
	if s == "" {
		return nil
	}
	return []string{strings.ToUpper(string(s))}
}

func line(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return label + ": " + value
}

func lines(ls ...string) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func (r Project) Card() Card {
	return Card{ID: r.ID, Title: r.Title, Subtitle: r.Category, Badges: badge(r.Status),
		Lines: lines(r.Description, line("Dates", strings.Trim(r.StartDate+" → "+r.EndDate, " →")))}
}

func (r Blog) Card() Card {
	return Card{ID: r.ID, Title: r.Title, Subtitle: r.Category, Badges: badge(r.Status),
		Lines: lines(line("Author", r.Author), line("Published", r.PublishedDate), line("Tags", strings.Join(r.Tags, ", ")))}
}

func (r Product) Card() Card {
	return Card{ID: r.ID, Title: r.Name, Subtitle: r.Category, Badges: badge(r.Status),
		Lines: lines(r.Description, fmt.Sprintf("Price: %.2f", r.Price), fmt.Sprintf("Stock: %d", r.Stock))}
}

func (r Event) Card() Card {
	return Card{ID: r.ID, Title: r.Name, Subtitle: r.Category,
		Lines: lines(line("When", strings.TrimSpace(r.Date+" "+r.Time)), line("Where", r.Location), r.Description)}
}

func (r Contact) Card() Card {
	b := badge(r.Status)
	if r.Priority != "" {
		b = append(b, string(r.Priority))
	}
	if r.Replied {
		b = append(b, "REPLIED")
	}
	return Card{ID: r.ID, Title: r.Name, Subtitle: r.Email, Badges: b,
		Lines: lines(line("Subject", r.Subject), r.Message, line("Received", r.CreatedAt))}
}

func (r Quote) Card() Card {
	return Card{ID: r.ID, Title: r.CompanyName, Subtitle: r.ContactPerson, Badges: badge(r.Status),
		Lines: lines(line("Email", r.Email), line("Budget", r.Budget), line("Timeline", r.Timeline), line("Goals", strings.Join(r.Goals, ", ")))}
}

func (r Subscriber) Card() Card {
	return Card{ID: r.ID, Title: r.Email, Subtitle: r.Name, Badges: badge(r.Status),
		Lines: lines(line("Subscribed", r.SubscribedAt), line("Source", r.Source))}
}

func (r Offer) Card() Card {
	return Card{ID: r.ID, Title: r.Title, Subtitle: r.Category, Badges: badge(r.Status),
		Lines: lines(r.Description,
			fmt.Sprintf("Price: %.2f → %.2f (-%d%%)", r.OriginalPrice, r.DiscountedPrice, r.DiscountPercentage),
			line("Valid until", r.ValidUntil))}
}

func (r Ad) Card() Card {
	return Card{ID: r.ID, Title: r.Title, Subtitle: strings.TrimSpace(r.Type + " @ " + r.Position), Badges: badge(r.Status),
		Lines: lines(line("Link", r.LinkURL),
			fmt.Sprintf("Clicks: %d  Impressions: %d  CTR: %s", r.Clicks, r.Impressions, r.CTR()),
			line("Runs", strings.Trim(r.StartDate+" → "+r.EndDate, " →")))}
}

func (r FAQ) Card() Card {
	return Card{ID: r.ID, Title: r.Question, Subtitle: r.Category, Badges: badge(r.Status),
		Lines: lines(r.Answer, fmt.Sprintf("Order: %d", r.Order))}
}

func (r Review) Card() Card {
	b := badge(r.Status)
	if r.Featured {
		b = append(b, "FEATURED")
	}
	who := strings.Trim(r.ClientTitle+", "+r.ClientCompany, ", ")
	return Card{ID: r.ID, Title: r.ClientName, Subtitle: who, Badges: b,
		Lines: lines(fmt.Sprintf("Rating: %s", strings.Repeat("★", clamp(r.Rating, 0, 5))), r.Review, line("Project", r.ProjectType))}
}

func (r TeamMember) Card() Card {
	return Card{ID: r.ID, Title: r.Name, Subtitle: r.Role, Badges: badge(r.Status),
		Lines: lines(line("Email", r.Email), r.Bio, line("Skills", strings.Join(r.Skills, ", ")))}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
