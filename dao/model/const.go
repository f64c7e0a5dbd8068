// Constants mirroring the enum columns in Postgres. Values are stored as
// text so that raw SQL stays readable during support sessions.
package model

// Role is the platform-wide role of a user.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "DRAFT"
	ProjectPublished ProjectStatus = "PUBLISHED"
	// ProjectArchived is reached only through closure: every need filled
	// and equity allocation at exactly 100%. Nothing un-archives a project.
	ProjectArchived ProjectStatus = "ARCHIVED"
)

// Visibility controls whether a project is listed to non-owners.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// NeedType is the kind of resource gap a project advertises.
type NeedType string

const (
	NeedFinancial   NeedType = "FINANCIAL"
	NeedSkill       NeedType = "SKILL"
	NeedMaterial    NeedType = "MATERIAL"
	NeedPartnership NeedType = "PARTNERSHIP"
)

// ApplicationStatus is the lifecycle stage of a need application.
// PENDING transitions exactly once, to ACCEPTED or REJECTED by a reviewer
// or to WITHDRAWN by the applicant.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// ReviewDecision is the verdict submitted by a reviewer.
type ReviewDecision string

const (
	DecisionAccept ReviewDecision = "ACCEPT"
	DecisionReject ReviewDecision = "REJECT"
)

// MemberStatus is the state of a project membership.
type MemberStatus string

const (
	MemberActive    MemberStatus = "ACTIVE"
	MemberSuspended MemberStatus = "SUSPENDED"
	MemberLeft      MemberStatus = "LEFT"
)

// NotificationType tags in-app notifications for the frontend.
type NotificationType string

const (
	NotifyApplicationReceived NotificationType = "APPLICATION_RECEIVED"
	NotifyApplicationDecided  NotificationType = "APPLICATION_DECIDED"
	NotifyEquityAnomaly       NotificationType = "EQUITY_ANOMALY"
)
