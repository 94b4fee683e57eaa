package seed

import (
	"fmt"

	bidRepo "labourmandi/database/repository/bid"
	jobRepo "labourmandi/database/repository/job"
	technicianRepo "labourmandi/database/repository/technician"
	userRepo "labourmandi/database/repository/user"
	"labourmandi/models"
	authSvc "labourmandi/services/auth"

	"github.com/google/uuid"
)

// SeedService loads the demo fixture set.
type SeedService interface {
	// SeedDemo is idempotent: it does nothing when any user already exists.
	// It reports whether data was loaded.
	SeedDemo() (bool, error)
}

// DefaultSeedService is the production implementation.
type DefaultSeedService struct {
	Users       userRepo.UserRepository
	Technicians technicianRepo.TechnicianRepository
	Jobs        jobRepo.JobRepository
	Bids        bidRepo.BidRepository
}

type demoTechnician struct {
	name          string
	phone         string
	city          string
	pin           string
	category      string
	subcategories []string
	experience    int
	dailyWage     int
	hourlyWage    int
	rating        int
}

var demoTechnicians = []demoTechnician{
	{"Rahul Verma", "9123456780", "Mumbai", "400001", "Construction & Civil Work", []string{"Mason (Rajmistri)", "Carpenter"}, 8, 800, 100, 48},
	{"Amit Singh", "9123456781", "Delhi", "110001", "Construction & Civil Work", []string{"Electrician", "Plumber"}, 5, 600, 75, 45},
	{"Suresh Patil", "9123456782", "Mumbai", "400002", "Specialized Technical Labour (Contract-based)", []string{"AC technician", "RO technician"}, 6, 700, 90, 46},
	{"Vikas Reddy", "9123456783", "Bangalore", "560001", "Construction & Civil Work", []string{"Welder / Fabricator", "Bar Bender / Steel Fixer"}, 10, 900, 120, 49},
	{"Manish Gupta", "9123456784", "Delhi", "110002", "Construction & Civil Work", []string{"Painter / POP Technician", "Tile / Marble Worker"}, 7, 750, 95, 47},
	{"Deepak Joshi", "9123456785", "Mumbai", "400003", "Maintenance & Repair Labour", []string{"House repair workers", "Waterproofing workers"}, 4, 550, 70, 44},
	{"Ravi Kumar", "9123456786", "Pune", "411001", "Industrial & Factory Labour", []string{"Machine operator", "Production line worker"}, 9, 850, 110, 48},
	{"Ankit Sharma", "9123456787", "Delhi", "110003", "Household & Domestic Work", []string{"Driver", "Gardener / Mali"}, 3, 450, 60, 42},
}

func (s *DefaultSeedService) SeedDemo() (bool, error) {
	count, err := s.Users.Count()
	if err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	customer1, err := s.createCustomer("9876543210", "Rajesh Kumar", "rajesh@example.com", "Mumbai", "400001", "Looking for reliable technicians", true, 500)
	if err != nil {
		return false, err
	}
	customer2, err := s.createCustomer("9876543211", "Priya Sharma", "priya@example.com", "Delhi", "110001", "", false, 300)
	if err != nil {
		return false, err
	}

	var technicians []*models.User
	for i, tech := range demoTechnicians {
		usr := models.User{
			Phone:     tech.phone,
			Name:      tech.name,
			UserType:  models.UserTypeTechnician,
			City:      tech.city,
			Pin:       tech.pin,
			AvatarURL: authSvc.AvatarURL(tech.name),
			Bio:       fmt.Sprintf("Experienced %s professional with %d years of expertise", tech.category, tech.experience),
			IsOnline:  i%2 == 0,
		}
		if err := s.Users.Create(&usr); err != nil {
			return false, err
		}
		profile := models.TechnicianProfile{
			UserID:          usr.ID,
			Category:        tech.category,
			Subcategories:   tech.subcategories,
			YearsExperience: tech.experience,
			DailyWage:       tech.dailyWage,
			HourlyWage:      tech.hourlyWage,
			Rating:          tech.rating,
			Certifications:  "Certified professional with ITI certification",
			WhatsappNumber:  tech.phone,
		}
		if err := s.Technicians.CreateProfile(&profile); err != nil {
			return false, err
		}
		if i%3 != 2 {
			item := models.PortfolioItem{
				TechnicianID: usr.ID,
				Title:        fmt.Sprintf("%s project", tech.subcategories[0]),
				Description:  fmt.Sprintf("Successfully completed %s work for residential client", tech.subcategories[0]),
				Price:        2000 + 500*i,
			}
			if err := s.Technicians.CreatePortfolioItem(&item); err != nil {
				return false, err
			}
		}
		technicians = append(technicians, &usr)
	}

	job1, err := s.createJob(customer1.ID, "Bathroom plumbing repair needed",
		"Need a plumber to fix leaking pipes in bathroom. Urgent work required.",
		"Construction & Civil Work", "Mumbai", "400001", 2000, 4000)
	if err != nil {
		return false, err
	}
	job2, err := s.createJob(customer2.ID, "Electrical wiring for new room",
		"Complete electrical wiring needed for newly constructed room including switches and lights.",
		"Construction & Civil Work", "Delhi", "110001", 5000, 8000)
	if err != nil {
		return false, err
	}
	if _, err := s.createJob(customer1.ID, "AC installation and servicing",
		"Need technician to install split AC and service existing AC unit.",
		"Specialized Technical Labour (Contract-based)", "Mumbai", "400001", 3000, 5000); err != nil {
		return false, err
	}
	if _, err := s.createJob(customer2.ID, "House painting work",
		"Looking for painter to paint 2BHK apartment. Interior walls and ceiling.",
		"Construction & Civil Work", "Delhi", "110001", 15000, 20000); err != nil {
		return false, err
	}

	for i := 0; i < 3 && i < len(technicians); i++ {
		b := models.Bid{
			JobID:        job1.ID,
			TechnicianID: technicians[i].ID,
			Amount:       2500 + i*500,
			DeliveryTime: fmt.Sprintf("%d days", i+1),
			Note:         "I have experience with similar work",
			IsDefault:    i == 0,
			Status:       models.BidStatusPending,
		}
		if err := s.Bids.Create(&b); err != nil {
			return false, err
		}
	}
	for i := 0; i < 2 && i < len(technicians); i++ {
		b := models.Bid{
			JobID:        job2.ID,
			TechnicianID: technicians[i].ID,
			Amount:       6000 + i*1000,
			DeliveryTime: fmt.Sprintf("%d days", i+2),
			Note:         "Professional electrical work guaranteed",
			IsDefault:    i == 0,
			Status:       models.BidStatusPending,
		}
		if err := s.Bids.Create(&b); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (s *DefaultSeedService) createCustomer(phone, name, email, city, pin, bio string, online bool, balance int) (*models.User, error) {
	usr := models.User{
		Phone:         phone,
		Name:          name,
		Email:         email,
		UserType:      models.UserTypeCustomer,
		City:          city,
		Pin:           pin,
		AvatarURL:     authSvc.AvatarURL(name),
		Bio:           bio,
		IsOnline:      online,
		WalletBalance: balance,
	}
	if err := s.Users.Create(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *DefaultSeedService) createJob(customerID uuid.UUID, title, description, category, city, pin string, budgetMin, budgetMax int) (*models.Job, error) {
	j := models.Job{
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		Category:    category,
		City:        city,
		Pin:         pin,
		BudgetMin:   budgetMin,
		BudgetMax:   budgetMax,
		Status:      models.JobStatusOpen,
	}
	if err := s.Jobs.Create(&j); err != nil {
		return nil, err
	}
	return &j, nil
}
