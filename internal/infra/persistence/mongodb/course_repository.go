package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type courseRepository struct {
	store *store[model.CourseModel]
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *mongo.Database) repository.CourseRepository {
	return &courseRepository{
		store: newStore[model.CourseModel](db, CollectionCourses, "level", "title", "instructor", "tags"),
	}
}

func (repo *courseRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Course, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, 0, len(docs))
	for _, doc := range docs {
		courses = append(courses, toCourseDomain(doc))
	}

	return courses, nil
}

func (repo *courseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCourseDomain(doc), nil
}

func (repo *courseRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}

	return toCourseDomain(doc), nil
}

func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	course.CreatedAt = now()
	course.UpdatedAt = course.CreatedAt
	doc := fromCourseDomain(course, assignID(course.ID))
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	course.ID = doc.ID.Hex()

	return nil
}

func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	oid, err := objectID(course.ID)
	if err != nil {
		return err
	}

	course.UpdatedAt = now()

	return repo.store.replace(ctx, oid, fromCourseDomain(course, oid))
}

func (repo *courseRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}

type moduleRepository struct {
	store *store[model.ModuleModel]
}

// NewModuleRepository is the constructor for moduleRepository.
func NewModuleRepository(db *mongo.Database) repository.ModuleRepository {
	s := newStore[model.ModuleModel](db, CollectionModules, "", "title")
	s.sort = bson.D{{Key: "course", Value: 1}, {Key: "order", Value: 1}}

	return &moduleRepository{store: s}
}

func (repo *moduleRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Module, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toModules(docs), nil
}

func (repo *moduleRepository) ListByCourse(ctx context.Context, courseID string) ([]*entity.Module, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return []*entity.Module{}, nil
	}

	docs, err := repo.store.find(ctx, bson.M{"course": oid}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return toModules(docs), nil
}

func (repo *moduleRepository) FindByID(ctx context.Context, id string) (*entity.Module, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toModuleDomain(doc), nil
}

func (repo *moduleRepository) Create(ctx context.Context, mod *entity.Module) error {
	mod.CreatedAt = now()
	mod.UpdatedAt = mod.CreatedAt
	doc, err := fromModuleDomain(mod, assignID(mod.ID))
	if err != nil {
		return err
	}
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	mod.ID = doc.ID.Hex()

	return nil
}

func (repo *moduleRepository) Update(ctx context.Context, mod *entity.Module) error {
	oid, err := objectID(mod.ID)
	if err != nil {
		return err
	}

	mod.UpdatedAt = now()
	doc, err := fromModuleDomain(mod, oid)
	if err != nil {
		return err
	}

	return repo.store.replace(ctx, oid, doc)
}

func (repo *moduleRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}

func (repo *moduleRepository) DeleteByCourse(ctx context.Context, courseID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return 0, nil
	}

	return repo.store.deleteMany(ctx, bson.M{"course": oid})
}

func toModules(docs []*model.ModuleModel) []*entity.Module {
	modules := make([]*entity.Module, 0, len(docs))
	for _, doc := range docs {
		modules = append(modules, toModuleDomain(doc))
	}

	return modules
}

type lessonRepository struct {
	store *store[model.LessonModel]
}

// NewLessonRepository is the constructor for lessonRepository.
func NewLessonRepository(db *mongo.Database) repository.LessonRepository {
	s := newStore[model.LessonModel](db, CollectionLessons, "", "title")
	s.sort = bson.D{{Key: "module", Value: 1}, {Key: "order", Value: 1}}

	return &lessonRepository{store: s}
}

func (repo *lessonRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Lesson, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toLessons(docs), nil
}

func (repo *lessonRepository) ListByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return []*entity.Lesson{}, nil
	}

	docs, err := repo.store.find(ctx, bson.M{"module": oid}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return toLessons(docs), nil
}

func (repo *lessonRepository) FindByID(ctx context.Context, id string) (*entity.Lesson, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toLessonDomain(doc), nil
}

func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	lesson.CreatedAt = now()
	lesson.UpdatedAt = lesson.CreatedAt
	doc, err := fromLessonDomain(lesson, assignID(lesson.ID))
	if err != nil {
		return err
	}
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	lesson.ID = doc.ID.Hex()

	return nil
}

func (repo *lessonRepository) Update(ctx context.Context, lesson *entity.Lesson) error {
	oid, err := objectID(lesson.ID)
	if err != nil {
		return err
	}

	lesson.UpdatedAt = now()
	doc, err := fromLessonDomain(lesson, oid)
	if err != nil {
		return err
	}

	return repo.store.replace(ctx, oid, doc)
}

func (repo *lessonRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}

func (repo *lessonRepository) DeleteByModules(ctx context.Context, moduleIDs []string) (int64, error) {
	oids := make(bson.A, 0, len(moduleIDs))
	for _, id := range moduleIDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	return repo.store.deleteMany(ctx, bson.M{"module": bson.M{"$in": oids}})
}

func toLessons(docs []*model.LessonModel) []*entity.Lesson {
	lessons := make([]*entity.Lesson, 0, len(docs))
	for _, doc := range docs {
		lessons = append(lessons, toLessonDomain(doc))
	}

	return lessons
}
