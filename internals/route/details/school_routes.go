// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearRoute "schoolhub_backend/internals/features/school/academics/academic_years/route"
	classRoute "schoolhub_backend/internals/features/school/academics/classes/route"
	courseRoute "schoolhub_backend/internals/features/school/academics/courses/route"
	parentRoute "schoolhub_backend/internals/features/school/academics/parents/route"
	studentRoute "schoolhub_backend/internals/features/school/academics/students/route"
	subjectRoute "schoolhub_backend/internals/features/school/academics/subjects/route"
	schoolRoute "schoolhub_backend/internals/features/school/schools/route"
)

func SchoolPublicRoutes(api fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolPublicRoutes(api, db)
}

func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolAdminRoutes(api, db)
	yearRoute.AcademicYearAdminRoutes(api, db)
	classRoute.ClassAdminRoutes(api, db)
	subjectRoute.SubjectAdminRoutes(api, db)
	studentRoute.StudentAdminRoutes(api, db)
	parentRoute.ParentAdminRoutes(api, db)
	courseRoute.CourseAdminRoutes(api, db)
}

func SchoolOwnerRoutes(api fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolOwnerRoutes(api, db)
}
