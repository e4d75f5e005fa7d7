package constants

// Permission keys resolved against Role.permissions (JSONB capability map).
// The core never switches on these directly; controllers ask the scope helper
// whether a key is granted. New keys can be registered without touching the
// gate logic.
const (
	PermManageUsers     = "users.manage"
	PermManageRoles     = "roles.manage"
	PermManageAcademics = "academics.manage"
	PermManageStudents  = "students.manage"
	PermManageContent   = "content.manage"
	PermManageMedia     = "media.manage"
	PermManageComms     = "communications.manage"
	PermManageBilling   = "billing.manage"
	PermViewAuditLogs   = "audit.view"
)

var AllPermissions = []string{
	PermManageUsers,
	PermManageRoles,
	PermManageAcademics,
	PermManageStudents,
	PermManageContent,
	PermManageMedia,
	PermManageComms,
	PermManageBilling,
	PermViewAuditLogs,
}
