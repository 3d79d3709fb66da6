package constant

// Roles are looked up by English name so seeds stay portable across environments.
const (
	RoleAdministration = "Administration"
	RoleLibrarian      = "Librarian"
	RoleReader         = "Reader"
)

// Features guarded by the authorization gate.
const (
	FeatureBookManagement           = "Book Management"
	FeatureAuthorManagement         = "Author Management"
	FeatureCategoryManagement       = "Category Management"
	FeatureRolePermissionManagement = "Role Permission Management"
	FeatureSystemMessageManagement  = "System Message Management"
)

// Permission names as stored in system_permissions.
const (
	PermissionAccessDenied = "Access Denied"
	PermissionView         = "View"
	PermissionModify       = "Modify"
	PermissionCreate       = "Create"
	PermissionFullAccess   = "Full Access"
)

// Fiber locals keys
const (
	LocalsUserId = "user_id"
	LocalsRole   = "role"
)
