package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"mydoc/cmd/internal/command"
	"mydoc/cmd/internal/domain/sqlite"
	"mydoc/cmd/internal/routes"
	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/validators"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(envOr("DB_PATH", "./database.db"))
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}
	store := sqlite.NewStore(db)

	// Getting services
	hospitalService := service.NewHospitalService(store, validate)
	doctorService := service.NewDoctorService(store, validate)
	apptService := service.NewAppointmentService(store, validate)
	billService := service.NewBillService(store, validate)
	medicationService := service.NewMedicationService(store, validate)
	historyService := service.NewHistoryService(store, validate)

	// Getting routes
	hospitalRoutes := routes.NewHospitalDefault(hospitalService)
	doctorRoutes := routes.NewDoctorDefault(doctorService)
	apptRoutes := routes.NewAppointmentDefault(apptService)
	billRoutes := routes.NewBillDefault(billService)
	medicationRoutes := routes.NewMedicationDefault(medicationService)
	historyRoutes := routes.NewHistoryDefault(historyService)
	patientRoutes := &routes.DefaultPatientRoute{
		Create:           &command.CreatePatientHandler{Store: store, Validate: validate},
		List:             &command.ListPatientsHandler{Store: store},
		ListAppointments: &command.ListPatientAppointmentsHandler{Store: store},
		Delete:           &command.DeletePatientHandler{Store: store},
	}
	prescriptionRoutes := &routes.DefaultPrescriptionRoute{
		Create:      &command.CreatePrescriptionHandler{Store: store, Validate: validate},
		List:        &command.ListPrescriptionsHandler{Store: store},
		ListDosages: &command.ListPrescriptionDosagesHandler{Store: store},
		Delete:      &command.DeletePrescriptionHandler{Store: store},
	}

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	api := e.Group("/v1/api")

	// Hospitals
	api.GET("/hospitals", hospitalRoutes.GetHospitals)
	api.POST("/hospitals", hospitalRoutes.CreateHospital)
	api.DELETE("/hospitals/:id", hospitalRoutes.DeleteHospital)
	api.GET("/hospitals/:id/doctors", hospitalRoutes.GetDoctorsFromHospital)
	api.POST("/hospitals/:id/doctors", hospitalRoutes.AddDoctorsToHospital)

	// Doctors
	api.GET("/doctors", doctorRoutes.GetDoctors)
	api.POST("/doctors", doctorRoutes.CreateDoctor)
	api.PUT("/doctors/:id", doctorRoutes.UpdateDoctor)
	api.DELETE("/doctors/:id", doctorRoutes.DeleteDoctor)
	api.GET("/doctors/:id/appointments", doctorRoutes.GetAppointmentsFromDoctor)
	api.POST("/doctors/:id/appointments", doctorRoutes.AddAppointmentsToDoctor)
	api.POST("/doctors/:id/reviews", doctorRoutes.AddReviewToDoctor)

	// Patients
	api.GET("/patients", patientRoutes.GetPatients)
	api.POST("/patients", patientRoutes.CreatePatient)
	api.DELETE("/patients/:id", patientRoutes.DeletePatient)
	api.GET("/patients/:id/appointments", patientRoutes.GetAppointmentsFromPatient)

	// Appointments
	api.GET("/appointments", apptRoutes.GetAppointments)
	api.POST("/appointments", apptRoutes.CreateAppointment)
	api.DELETE("/appointments/:id", apptRoutes.DeleteAppointment)

	// Bills
	api.GET("/bills", billRoutes.GetBills)
	api.GET("/bills/:id", billRoutes.GetBill)
	api.POST("/bills", billRoutes.CreateBill)
	api.DELETE("/bills/:id", billRoutes.DeleteBill)
	api.GET("/bills/:id/medications", billRoutes.GetMedicationsFromBill)
	api.POST("/bills/:id/medications", billRoutes.AddMedicationsToBill)
	api.DELETE("/bills/:id/medications/:medicationId", billRoutes.RemoveMedicationFromBill)
	api.GET("/bills/:id/payment", billRoutes.GetPaymentFromBill)
	api.POST("/bills/:id/payment", billRoutes.RegisterPaymentToBill)

	// Medications
	api.GET("/medications", medicationRoutes.GetMedications)
	api.GET("/medications/:id", medicationRoutes.GetMedication)
	api.POST("/medications", medicationRoutes.CreateMedication)
	api.PUT("/medications/:id", medicationRoutes.UpdateMedication)
	api.DELETE("/medications/:id", medicationRoutes.DeleteMedication)

	// Prescriptions
	api.GET("/prescriptions", prescriptionRoutes.GetPrescriptions)
	api.POST("/prescriptions", prescriptionRoutes.CreatePrescription)
	api.DELETE("/prescriptions/:id", prescriptionRoutes.DeletePrescription)
	api.GET("/prescriptions/:id/dosages", prescriptionRoutes.GetMedicationsFromPrescription)

	// Histories
	api.GET("/histories", historyRoutes.GetHistories)
	api.POST("/histories", historyRoutes.CreateHistory)
	api.DELETE("/histories/:id", historyRoutes.DeleteHistory)
	api.GET("/histories/:id/medications", historyRoutes.GetMedicationsFromHistory)

	err = e.Start(":" + envOr("PORT", "6060"))
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
