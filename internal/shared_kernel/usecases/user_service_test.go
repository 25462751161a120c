package usecases_test

import (
	"context"
	"errors"
	"sort"

	"scout-server/internal/shared_kernel/domain"
	"scout-server/internal/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeUserRepository struct {
	users map[domain.ID]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[domain.ID]domain.User{}}
}

func (r *fakeUserRepository) Create(_ context.Context, user domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return usecases.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id domain.ID) error {
	if _, ok := r.users[id]; !ok {
		return usecases.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id domain.ID) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, usecases.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, usecases.ErrUserNotFound
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, usecases.ErrUserNotFound
}

func (r *fakeUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

func (r *fakeUserRepository) CountByRole(_ context.Context) (map[domain.Role]int, error) {
	counts := map[domain.Role]int{}
	for _, user := range r.users {
		counts[user.Role]++
	}
	return counts, nil
}

var _ = Describe("UserService", func() {
	var (
		ctx        context.Context
		repository *fakeUserRepository
		service    *usecases.SimpleUserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repository = newFakeUserRepository()
		service = usecases.NewUserService(repository)
	})

	createUser := func(username string, role domain.Role) domain.User {
		user, err := service.CreateUser(ctx, usecases.UserInput{
			Username: username,
			Email:    username + "@scouts.fr",
			Password: "secret",
			Role:     role,
		})
		Expect(err).NotTo(HaveOccurred())
		return user
	}

	Context("CreateUser", func() {
		It("stores a hashed password and the requested role", func() {
			user := createUser("akela", domain.RoleEditor)

			stored, err := repository.GetByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Role).To(Equal(domain.RoleEditor))
			Expect(stored.CheckPassword("secret")).To(BeTrue())
		})

		It("defaults an empty password", func() {
			user, err := service.CreateUser(ctx, usecases.UserInput{
				Username: "baloo",
				Email:    "baloo@scouts.fr",
				Role:     domain.RoleReadonly,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.CheckPassword(domain.DefaultPassword)).To(BeTrue())
		})

		It("rejects a duplicated username", func() {
			createUser("akela", domain.RoleEditor)

			_, err := service.CreateUser(ctx, usecases.UserInput{
				Username: "akela",
				Email:    "other@scouts.fr",
				Role:     domain.RoleReadonly,
			})

			Expect(errors.Is(err, domain.ErrConflict)).To(BeTrue())
		})

		It("rejects a duplicated email", func() {
			createUser("akela", domain.RoleEditor)

			_, err := service.CreateUser(ctx, usecases.UserInput{
				Username: "raksha",
				Email:    "akela@scouts.fr",
				Role:     domain.RoleReadonly,
			})

			Expect(errors.Is(err, domain.ErrConflict)).To(BeTrue())
		})
	})

	Context("GetRole", func() {
		It("resolves the stored role", func() {
			user := createUser("hathi", domain.RoleAdmin)

			role, err := service.GetRole(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(role).To(Equal(domain.RoleAdmin))
		})

		It("reports unknown users as not found", func() {
			_, err := service.GetRole(ctx, "missing")
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
		})
	})

	Context("UpdateUser", func() {
		It("forbids an administrator from editing itself", func() {
			admin := createUser("chil", domain.RoleAdmin)

			_, err := service.UpdateUser(ctx, admin.ID, admin.ID, usecases.UserInput{
				Username: "chil",
				Email:    "chil@scouts.fr",
				Role:     domain.RoleReadonly,
			})

			Expect(errors.Is(err, domain.ErrForbidden)).To(BeTrue())
		})

		It("keeps the password when none is given", func() {
			admin := createUser("chil", domain.RoleAdmin)
			target := createUser("mang", domain.RoleReadonly)

			updated, err := service.UpdateUser(ctx, admin.ID, target.ID, usecases.UserInput{
				Username: "mang",
				Email:    "mang@scouts.fr",
				Role:     domain.RoleEditor,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(domain.RoleEditor))
			Expect(updated.CheckPassword("secret")).To(BeTrue())
			Expect(updated.CreatedAt).To(Equal(target.CreatedAt))
		})

		It("allows a user to keep its own username", func() {
			admin := createUser("chil", domain.RoleAdmin)
			target := createUser("mang", domain.RoleReadonly)

			_, err := service.UpdateUser(ctx, admin.ID, target.ID, usecases.UserInput{
				Username: "mang",
				Email:    "mang@scouts.fr",
				Role:     domain.RoleReadonly,
			})

			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("DeleteUser", func() {
		It("forbids an administrator from deleting itself", func() {
			admin := createUser("chil", domain.RoleAdmin)

			err := service.DeleteUser(ctx, admin.ID, admin.ID)
			Expect(errors.Is(err, domain.ErrForbidden)).To(BeTrue())
		})

		It("removes another user", func() {
			admin := createUser("chil", domain.RoleAdmin)
			target := createUser("mang", domain.RoleReadonly)

			Expect(service.DeleteUser(ctx, admin.ID, target.ID)).To(Succeed())
			_, err := service.GetUser(ctx, target.ID)
			Expect(errors.Is(err, usecases.ErrUserNotFound)).To(BeTrue())
		})
	})

	Context("ChangePassword", func() {
		It("rejects a wrong current password", func() {
			user := createUser("ferao", domain.RoleReadonly)

			err := service.ChangePassword(ctx, user.ID, "nope", "new-secret")
			Expect(errors.Is(err, domain.ErrForbidden)).To(BeTrue())
		})

		It("replaces the password", func() {
			user := createUser("ferao", domain.RoleReadonly)

			Expect(service.ChangePassword(ctx, user.ID, "secret", "new-secret")).To(Succeed())
			stored, _ := repository.GetByID(ctx, user.ID)
			Expect(stored.CheckPassword("new-secret")).To(BeTrue())
		})
	})

	Context("EnsureDefaultAdmin", func() {
		input := usecases.UserInput{Username: "admin", Email: "admin@example.com", Password: "admin123"}

		It("creates the admin only once", func() {
			created, err := service.EnsureDefaultAdmin(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			created, err = service.EnsureDefaultAdmin(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			counts, err := service.CountByRole(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts[domain.RoleAdmin]).To(Equal(1))
		})

		It("does nothing when users already exist", func() {
			createUser("akela", domain.RoleReadonly)

			created, err := service.EnsureDefaultAdmin(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
		})
	})
})
