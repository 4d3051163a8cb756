package domain

// Project is a portfolio entry.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category"`
	Status      Status `json:"status" validate:"omitempty,status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Blog is an article; Content is opaque rich-text HTML.
type Blog struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"publishedDate"`
	Tags          []string `json:"tags"`
	Content       string   `json:"content"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Status        Status   `json:"status" validate:"omitempty,status"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Status      Status  `json:"status" validate:"omitempty,status"`
}

type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Contact is an inbound message from the public site.
type Contact struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone"`
	Subject   string   `json:"subject"`
	Message   string   `json:"message"`
	Priority  Priority `json:"priority" validate:"omitempty,priority"`
	Status    Status   `json:"status" validate:"omitempty,status"`
	Replied   bool     `json:"replied"`
	CreatedAt string   `json:"createdAt"`
}

// Quote is a website quote request.
type Quote struct {
	ID                  int64    `json:"id"`
	CompanyName         string   `json:"companyName" validate:"required"`
	ContactPerson       string   `json:"contactPerson"`
	Email               string   `json:"email" validate:"omitempty,email"`
	Phone               string   `json:"phone"`
	Location            string   `json:"location"`
	HasWebsite          bool     `json:"hasWebsite"`
	Website             string   `json:"website"`
	BusinessDescription string   `json:"businessDescription"`
	TargetAudience      string   `json:"targetAudience"`
	Products            string   `json:"products"`
	Goals               []string `json:"goals"`
	OtherGoal           string   `json:"otherGoal"`
	Priorities          []string `json:"priorities"`
	DesignLikes         string   `json:"designLikes"`
	DesignDislikes      string   `json:"designDislikes"`
	ColorPreferences    string   `json:"colorPreferences"`
	ReferenceWebsites   []string `json:"referenceWebsites"`
	Competitors         []string `json:"competitors"`
	Budget              string   `json:"budget"`
	Timeline            string   `json:"timeline"`
	Additional          string   `json:"additional"`
	Status              Status   `json:"status" validate:"omitempty,status"`
	CreatedAt           string   `json:"createdAt"`
}

// Subscriber is a newsletter subscription.
type Subscriber struct {
	ID           int64  `json:"id"`
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name"`
	Status       Status `json:"status" validate:"omitempty,status"`
	SubscribedAt string `json:"subscribedAt"`
	Source       string `json:"source"`
}

type Offer struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title" validate:"required"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	ImageURL           string  `json:"imageUrl,omitempty"`
	OriginalPrice      float64 `json:"originalPrice" validate:"gte=0"`
	DiscountedPrice    float64 `json:"discountedPrice" validate:"gte=0"`
	DiscountPercentage int     `json:"discountPercentage"`
	ValidUntil         string  `json:"validUntil"`
	Status             Status  `json:"status" validate:"omitempty,status"`
	CreatedAt          string  `json:"createdAt"`
}

// Ad is an advertisement slot with its delivery counters.
type Ad struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl" validate:"omitempty,url"`
	Position    string `json:"position"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Priority    int    `json:"priority" validate:"gte=0"`
	Clicks      int    `json:"clicks" validate:"gte=0"`
	Impressions int    `json:"impressions" validate:"gte=0"`
	Status      Status `json:"status" validate:"omitempty,status"`
	CreatedAt   string `json:"createdAt"`
}

type FAQ struct {
	ID        int64  `json:"id"`
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category"`
	Order     int    `json:"order"`
	Status    Status `json:"status" validate:"omitempty,status"`
	CreatedAt string `json:"createdAt"`
}

// Review is a client testimonial.
type Review struct {
	ID            int64  `json:"id"`
	ClientName    string `json:"clientName" validate:"required"`
	ClientTitle   string `json:"clientTitle"`
	ClientCompany string `json:"clientCompany"`
	ClientImage   string `json:"clientImage"`
	Review        string `json:"review" validate:"required"`
	Rating        int    `json:"rating" validate:"gte=0,lte=5"`
	ProjectType   string `json:"projectType"`
	Featured      bool   `json:"featured"`
	Status        Status `json:"status" validate:"omitempty,status"`
	CreatedAt     string `json:"createdAt"`
}

type TeamMember struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Email        string   `json:"email" validate:"omitempty,email"`
	AvatarURL    string   `json:"avatarUrl"`
	Bio          string   `json:"bio"`
	LinkedIn     string   `json:"linkedin"`
	GitHub       string   `json:"github"`
	Website      string   `json:"website"`
	ResumeURL    string   `json:"resumeUrl"`
	Achievements []string `json:"achievements"`
	Skills       []string `json:"skills"`
	Status       Status   `json:"status" validate:"omitempty,status"`
}

// User is an administrator account. The hash is persisted but never
// rendered to clients.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

func (r Project) GetID() int64    { return r.ID }
func (r Blog) GetID() int64       { return r.ID }
func (r Product) GetID() int64    { return r.ID }
func (r Event) GetID() int64      { return r.ID }
func (r Contact) GetID() int64    { return r.ID }
func (r Quote) GetID() int64      { return r.ID }
func (r Subscriber) GetID() int64 { return r.ID }
func (r Offer) GetID() int64      { return r.ID }
func (r Ad) GetID() int64         { return r.ID }
func (r FAQ) GetID() int64        { return r.ID }
func (r Review) GetID() int64     { return r.ID }
func (r TeamMember) GetID() int64 { return r.ID }
func (r User) GetID() int64       { return r.ID }

func (r Project) WithID(id int64) Project       { r.ID = id; return r }
func (r Blog) WithID(id int64) Blog             { r.ID = id; return r }
func (r Product) WithID(id int64) Product       { r.ID = id; return r }
func (r Event) WithID(id int64) Event           { r.ID = id; return r }
func (r Contact) WithID(id int64) Contact       { r.ID = id; return r }
func (r Quote) WithID(id int64) Quote           { r.ID = id; return r }
func (r Subscriber) WithID(id int64) Subscriber { r.ID = id; return r }
func (r Offer) WithID(id int64) Offer           { r.ID = id; return r }
func (r Ad) WithID(id int64) Ad                 { r.ID = id; return r }
func (r FAQ) WithID(id int64) FAQ               { r.ID = id; return r }
func (r Review) WithID(id int64) Review         { r.ID = id; return r }
func (r TeamMember) WithID(id int64) TeamMember { r.ID = id; return r }
func (r User) WithID(id int64) User             { r.ID = id; return r }

func (r Contact) GetCreatedAt() string    { return r.CreatedAt }
func (r Quote) GetCreatedAt() string      { return r.CreatedAt }
func (r Subscriber) GetCreatedAt() string { return r.SubscribedAt }
func (r Offer) GetCreatedAt() string      { return r.CreatedAt }
func (r Ad) GetCreatedAt() string         { return r.CreatedAt }
func (r FAQ) GetCreatedAt() string        { return r.CreatedAt }
func (r Review) GetCreatedAt() string     { return r.CreatedAt }
func (r User) GetCreatedAt() string       { return r.CreatedAt }

func (r Contact) WithCreatedAt(d string) Contact       { r.CreatedAt = d; return r }
func (r Quote) WithCreatedAt(d string) Quote           { r.CreatedAt = d; return r }
func (r Subscriber) WithCreatedAt(d string) Subscriber { r.SubscribedAt = d; return r }
func (r Offer) WithCreatedAt(d string) Offer           { r.CreatedAt = d; return r }
func (r Ad) WithCreatedAt(d string) Ad                 { r.CreatedAt = d; return r }
func (r FAQ) WithCreatedAt(d string) FAQ               { r.CreatedAt = d; return r }
func (r Review) WithCreatedAt(d string) Review         { r.CreatedAt = d; return r }
func (r User) WithCreatedAt(d string) User             { r.CreatedAt = d; return r }
