package console

var (
	publishStatuses = []string{"draft", "pending", "published"}
	courseLevels    = []string{"beginner", "intermediate", "advanced"}
)

// ProductSchema is shared by every product catalogue.
func ProductSchema() Schema {
	return Schema{
		SlugSource: "title",
		Fields: []Field{
			{Name: "title", Label: "Title", Required: true, MinLen: 2},
			{Name: "slug", Label: "Slug"},
			{Name: "description", Label: "Description"},
			{Name: "price", Label: "Price", Kind: KindNumber, Required: true},
			{Name: "salePrice", Label: "Sale price", Kind: KindOptionalNumber},
			{Name: "category", Label: "Category"},
			{Name: "tags", Label: "Tags", Kind: KindList},
			{Name: "status", Label: "Status", Default: "draft", Enum: publishStatuses},
			{Name: "thumbnail", Label: "Thumbnail"},
			{Name: "rating", Label: "Rating", Kind: KindNumber},
		},
	}
}

func CategorySchema() Schema {
	return Schema{
		SlugSource: "name",
		Fields: []Field{
			{Name: "name", Label: "Name", Required: true, MinLen: 2},
			{Name: "slug", Label: "Slug"},
			{Name: "type", Label: "Type", Required: true},
			{Name: "isParent", Label: "Parent category", Kind: KindBool, Default: "true"},
			{Name: "parentCategory", Label: "Parent", Kind: KindOptionalText},
			{Name: "status", Label: "Status", Default: "active", Enum: []string{"active", "inactive"}},
		},
	}
}

func CourseSchema() Schema {
	return Schema{
		SlugSource: "title",
		Fields: []Field{
			{Name: "title", Label: "Title", Required: true, MinLen: 2},
			{Name: "slug", Label: "Slug"},
			{Name: "description", Label: "Description"},
			{Name: "instructor", Label: "Instructor", Required: true},
			{Name: "level", Label: "Level", Default: "beginner", Enum: courseLevels},
			{Name: "duration", Label: "Duration"},
			{Name: "price", Label: "Price", Kind: KindNumber, Required: true},
			{Name: "salePrice", Label: "Sale price", Kind: KindOptionalNumber},
			{Name: "category", Label: "Category"},
			{Name: "tags", Label: "Tags", Kind: KindList},
			{Name: "status", Label: "Status", Default: "draft", Enum: publishStatuses},
			{Name: "thumbnail", Label: "Thumbnail"},
			{Name: "rating", Label: "Rating", Kind: KindNumber},
		},
	}
}

// ModuleSchema binds a module to its course on create only.
func ModuleSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "course", Label: "Course", Required: true, CreateOnly: true},
			{Name: "title", Label: "Title", Required: true},
			{Name: "description", Label: "Description"},
			{Name: "order", Label: "Order", Kind: KindInteger},
		},
	}
}

func LessonSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "module", Label: "Module", Required: true, CreateOnly: true},
			{Name: "title", Label: "Title", Required: true},
			{Name: "content", Label: "Content"},
			{Name: "videoUrl", Label: "Video URL"},
			{Name: "duration", Label: "Duration (minutes)", Kind: KindInteger},
			{Name: "order", Label: "Order", Kind: KindInteger},
			{Name: "isPreview", Label: "Free preview", Kind: KindBool},
		},
	}
}

func WebinarSchema() Schema {
	return Schema{
		SlugSource: "title",
		Fields: []Field{
			{Name: "title", Label: "Title", Required: true, MinLen: 2},
			{Name: "slug", Label: "Slug"},
			{Name: "description", Label: "Description"},
			{Name: "host", Label: "Host", Required: true},
			{Name: "scheduledAt", Label: "Scheduled at (RFC 3339)", Required: true},
			{Name: "durationMinutes", Label: "Duration (minutes)", Kind: KindInteger, Default: "60"},
			{Name: "price", Label: "Price", Kind: KindNumber},
			{Name: "status", Label: "Status", Default: "draft", Enum: publishStatuses},
			{Name: "meetingUrl", Label: "Meeting URL"},
			{Name: "thumbnail", Label: "Thumbnail"},
		},
	}
}

// CertificateSchema leaves status out; it only changes through revoke.
func CertificateSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "certificateId", Label: "Certificate ID", Kind: KindOptionalText, CreateOnly: true},
			{Name: "studentName", Label: "Student name", Required: true},
			{Name: "courseName", Label: "Course name", Required: true},
			{Name: "completedAt", Label: "Completed at (RFC 3339)", Kind: KindOptionalText},
		},
	}
}

// UserSchema treats the password as write-only.
func UserSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "firstName", Label: "First name", Required: true, MinLen: 2},
			{Name: "lastName", Label: "Last name"},
			{Name: "email", Label: "Email", Required: true, Pattern: PatternEmail},
			{Name: "phone", Label: "Phone", Pattern: PatternPhone},
			{Name: "role", Label: "Role", Default: "buyer", Enum: []string{"buyer", "seller", "admin"}},
			{Name: "status", Label: "Status", Default: "active", Enum: []string{"active", "blocked"}},
			{Name: "password", Label: "Password", Required: true, MinLen: 6, WriteOnly: true},
		},
	}
}
