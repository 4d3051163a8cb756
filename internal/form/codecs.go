package form

import "github.com/MrSnakeDoc/backoffice/internal/domain"

func Project() Codec[domain.Project] {
	type r = domain.Project
	return NewCodec(nil,
		Text("title", func(p *r) *string { return &p.Title }),
		Text("description", func(p *r) *string { return &p.Description }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
		Text("category", func(p *r) *string { return &p.Category }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
		Date("startDate", func(p *r) *string { return &p.StartDate }),
		Date("endDate", func(p *r) *string { return &p.EndDate }),
	)
}

func Blog() Codec[domain.Blog] {
	type r = domain.Blog
	return NewCodec(func() r { return r{Status: domain.StatusDraft} },
		Text("title", func(p *r) *string { return &p.Title }),
		Text("category", func(p *r) *string { return &p.Category }),
		Text("author", func(p *r) *string { return &p.Author }),
		Date("publishedDate", func(p *r) *string { return &p.PublishedDate }),
		List("tags", func(p *r) *[]string { return &p.Tags }),
		Text("content", func(p *r) *string { return &p.Content }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func Product() Codec[domain.Product] {
	type r = domain.Product
	return NewCodec(func() r { return r{Status: domain.StatusActive} },
		Text("name", func(p *r) *string { return &p.Name }),
		Text("description", func(p *r) *string { return &p.Description }),
		Float("price", func(p *r) *float64 { return &p.Price }),
		Int("stock", func(p *r) *int { return &p.Stock }),
		Text("category", func(p *r) *string { return &p.Category }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func Event() Codec[domain.Event] {
	type r = domain.Event
	return NewCodec(nil,
		Text("name", func(p *r) *string { return &p.Name }),
		Text("description", func(p *r) *string { return &p.Description }),
		Date("date", func(p *r) *string { return &p.Date }),
		Text("time", func(p *r) *string { return &p.Time }),
		Text("location", func(p *r) *string { return &p.Location }),
		Text("category", func(p *r) *string { return &p.Category }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
	)
}

func Contact() Codec[domain.Contact] {
	type r = domain.Contact
	return NewCodec(func() r { return r{Status: domain.StatusUnread, Priority: domain.PriorityMedium} },
		Text("name", func(p *r) *string { return &p.Name }),
		Text("email", func(p *r) *string { return &p.Email }),
		Text("phone", func(p *r) *string { return &p.Phone }),
		Text("subject", func(p *r) *string { return &p.Subject }),
		Text("message", func(p *r) *string { return &p.Message }),
		PriorityOf(func(p *r) *domain.Priority { return &p.Priority }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
		Bool("replied", func(p *r) *bool { return &p.Replied }),
	)
}

func Quote() Codec[domain.Quote] {
	type r = domain.Quote
	return NewCodec(func() r { return r{Status: domain.StatusPending} },
		Text("companyName", func(p *r) *string { return &p.CompanyName }),
		Text("contactPerson", func(p *r) *string { return &p.ContactPerson }),
		Text("email", func(p *r) *string { return &p.Email }),
		Text("phone", func(p *r) *string { return &p.Phone }),
		Text("location", func(p *r) *string { return &p.Location }),
		Bool("hasWebsite", func(p *r) *bool { return &p.HasWebsite }),
		Text("website", func(p *r) *string { return &p.Website }),
		Text("businessDescription", func(p *r) *string { return &p.BusinessDescription }),
		Text("targetAudience", func(p *r) *string { return &p.TargetAudience }),
		Text("products", func(p *r) *string { return &p.Products }),
		List("goals", func(p *r) *[]string { return &p.Goals }),
		Text("otherGoal", func(p *r) *string { return &p.OtherGoal }),
		List("priorities", func(p *r) *[]string { return &p.Priorities }),
		Text("designLikes", func(p *r) *string { return &p.DesignLikes }),
		Text("designDislikes", func(p *r) *string { return &p.DesignDislikes }),
		Text("colorPreferences", func(p *r) *string { return &p.ColorPreferences }),
		List("referenceWebsites", func(p *r) *[]string { return &p.ReferenceWebsites }),
		List("competitors", func(p *r) *[]string { return &p.Competitors }),
		Text("budget", func(p *r) *string { return &p.Budget }),
		Text("timeline", func(p *r) *string { return &p.Timeline }),
		Text("additional", func(p *r) *string { return &p.Additional }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func Subscriber() Codec[domain.Subscriber] {
	type r = domain.Subscriber
	return NewCodec(func() r { return r{Status: domain.StatusActive, Source: "dashboard"} },
		Text("email", func(p *r) *string { return &p.Email }),
		Text("name", func(p *r) *string { return &p.Name }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
		Text("source", func(p *r) *string { return &p.Source }),
	)
}

func Offer() Codec[domain.Offer] {
	type r = domain.Offer
	return NewCodec(func() r { return r{Status: domain.StatusActive} },
		Text("title", func(p *r) *string { return &p.Title }),
		Text("description", func(p *r) *string { return &p.Description }),
		Text("category", func(p *r) *string { return &p.Category }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
		Float("originalPrice", func(p *r) *float64 { return &p.OriginalPrice }),
		Float("discountedPrice", func(p *r) *float64 { return &p.DiscountedPrice }),
		Date("validUntil", func(p *r) *string { return &p.ValidUntil }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	).WithDerive(func(o r) r {
		o.DiscountPercentage = domain.DiscountPercentage(o.OriginalPrice, o.DiscountedPrice)
		return o
	})
}

func Ad() Codec[domain.Ad] {
	type r = domain.Ad
	return NewCodec(func() r {
		return r{Position: "header", Type: "banner", Status: domain.StatusActive, Priority: 1}
	},
		Text("title", func(p *r) *string { return &p.Title }),
		Text("description", func(p *r) *string { return &p.Description }),
		Text("imageUrl", func(p *r) *string { return &p.ImageURL }),
		Text("linkUrl", func(p *r) *string { return &p.LinkURL }),
		Text("position", func(p *r) *string { return &p.Position }),
		Text("type", func(p *r) *string { return &p.Type }),
		Date("startDate", func(p *r) *string { return &p.StartDate }),
		Date("endDate", func(p *r) *string { return &p.EndDate }),
		Int("priority", func(p *r) *int { return &p.Priority }),
		Int("clicks", func(p *r) *int { return &p.Clicks }),
		Int("impressions", func(p *r) *int { return &p.Impressions }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func FAQ() Codec[domain.FAQ] {
	type r = domain.FAQ
	return NewCodec(func() r { return r{Status: domain.StatusPublished} },
		Text("question", func(p *r) *string { return &p.Question }),
		Text("answer", func(p *r) *string { return &p.Answer }),
		Text("category", func(p *r) *string { return &p.Category }),
		Int("order", func(p *r) *int { return &p.Order }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func Review() Codec[domain.Review] {
	type r = domain.Review
	return NewCodec(func() r { return r{Rating: 5, Status: domain.StatusPending} },
		Text("clientName", func(p *r) *string { return &p.ClientName }),
		Text("clientTitle", func(p *r) *string { return &p.ClientTitle }),
		Text("clientCompany", func(p *r) *string { return &p.ClientCompany }),
		Text("clientImage", func(p *r) *string { return &p.ClientImage }),
		Text("review", func(p *r) *string { return &p.Review }),
		Int("rating", func(p *r) *int { return &p.Rating }),
		Text("projectType", func(p *r) *string { return &p.ProjectType }),
		Bool("featured", func(p *r) *bool { return &p.Featured }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}

func TeamMember() Codec[domain.TeamMember] {
	type r = domain.TeamMember
	return NewCodec(func() r { return r{Status: domain.StatusActive} },
		Text("name", func(p *r) *string { return &p.Name }),
		Text("role", func(p *r) *string { return &p.Role }),
		Text("email", func(p *r) *string { return &p.Email }),
		Text("avatarUrl", func(p *r) *string { return &p.AvatarURL }),
		Text("bio", func(p *r) *string { return &p.Bio }),
		Text("linkedin", func(p *r) *string { return &p.LinkedIn }),
		Text("github", func(p *r) *string { return &p.GitHub }),
		Text("website", func(p *r) *string { return &p.Website }),
		Text("resumeUrl", func(p *r) *string { return &p.ResumeURL }),
		List("achievements", func(p *r) *[]string { return &p.Achievements }),
		List("skills", func(p *r) *[]string { return &p.Skills }),
		StatusOf(func(p *r) *domain.Status { return &p.Status }),
	)
}
