package domain

import "time"

// Enumerations
const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"

	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientLead     ClientStatus = "lead"
	ClientLost     ClientStatus = "lost"

	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"

	LeadDiscussion LeadStatus = "Sedang Diskusi"
	LeadFollowUp   LeadStatus = "Menunggu Follow Up"
	LeadConverted  LeadStatus = "Dikonversi"
	LeadLost       LeadStatus = "Ditolak"

	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostCancelled PostStatus = "cancelled"

	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"

	AssetAvailable   AssetStatus = "Tersedia"
	AssetInUse       AssetStatus = "Digunakan"
	AssetMaintenance AssetStatus = "Perbaikan"
)

// ProjectCompleted is the status value the reporting pipeline treats as a
// finished project. Project status is otherwise free-form; the app stores
// display strings directly.
const ProjectCompleted = "Selesai"

type UserRole string
type ClientStatus string
type TransactionType string
type LeadStatus string
type PostStatus string
type DiscountType string
type AssetStatus string

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         UserRole
	IsGoogle     bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Client struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Instagram      string
	ClientType     string
	Status         ClientStatus
	Since          time.Time
	LastContact    time.Time
	PortalAccessID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Project struct {
	ID          int64
	ClientID    int64
	ProjectName string
	ProjectType string
	PackageID   *int64
	Status      string
	Date        time.Time
	Deadline    *time.Time
	Location    string
	Progress    int
	TotalCost   int64
	AmountPaid  int64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Transaction struct {
	ID          int64
	ProjectID   *int64
	ClientID    *int64
	Type        TransactionType
	Amount      int64
	Category    string
	Description string
	Method      string
	Date        time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

type Lead struct {
	ID             int64
	Name           string
	ContactChannel string
	Location       string
	Status         LeadStatus
	Date           time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type SocialMediaPost struct {
	ID            int64
	ProjectID     *int64
	ClientName    string
	PostType      string
	Platform      string
	ScheduledDate time.Time
	Caption       string
	MediaURL      string
	Status        PostStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type PromoCode struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue int64
	IsActive      bool
	UsageCount    int
	MaxUsage      *int
	ExpiryDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type Package struct {
	ID                int64
	Name              string
	Price             int64
	Description       string
	DurationTimeframe string
	Photographers     string
	Videographers     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

type AddOn struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type TeamMember struct {
	ID          int64
	Name        string
	Role        string
	Email       string
	Phone       string
	StandardFee int64
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Contract struct {
	ID              int64
	ContractNumber  string
	ClientID        int64
	ProjectID       *int64
	SigningDate     time.Time
	SigningLocation string
	ClientName1     string
	ClientAddress1  string
	ClientPhone1    string
	ShootingDetails string
	PaymentTerms    string
	Cancellation    string
	Jurisdiction    string
	VendorSignature string
	ClientSignature string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

type Asset struct {
	ID            int64
	Name          string
	Category      string
	PurchaseDate  time.Time
	PurchasePrice int64
	SerialNumber  *string
	Status        AssetStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type SOP struct {
	ID          int64
	Title       string
	Category    string
	Content     string
	LastUpdated time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

type ClientFeedback struct {
	ID           int64
	ClientName   string
	Satisfaction string
	Rating       int
	Feedback     string
	Date         time.Time
	CreatedAt    time.Time
}

type Notification struct {
	ID        int64
	Title     string
	Message   string
	Timestamp time.Time
	IsRead    bool
	Icon      string
	Link      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Profile is the single studio profile row: identity shown on public
// reports plus the category vocabularies the forms offer.
type Profile struct {
	ID                int64
	FullName          string
	Email             string
	Phone             string
	CompanyName       string
	Website           string
	Address           string
	BankAccount       string
	Bio               string
	IncomeCategories  []string
	ExpenseCategories []string
	ProjectTypes      []string
	EventTypes        []string
	UpdatedAt         time.Time
}
