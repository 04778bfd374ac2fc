package main

import (
	"log"

	"recipehub/config"
	"recipehub/database"
	"recipehub/routers"
	"recipehub/services/appointment"
	"recipehub/services/enrollment"
	"recipehub/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	mailer := utils.NewMailer(config.AppConfig)

	var (
		enrollmentOpts  []enrollment.Option
		appointmentOpts []appointment.Option
	)
	if mailer != nil {
		enrollmentOpts = append(enrollmentOpts, enrollment.WithNotifier(mailer))
		appointmentOpts = append(appointmentOpts, appointment.WithNotifier(mailer))
	}
	enrollmentSvc := enrollment.NewService(db, enrollmentOpts...)
	appointmentSvc := appointment.NewService(db, appointmentOpts...)

	if config.AppConfig.ReconcileOnBoot {
		utils.RunReconcile(enrollmentSvc)
	}
	scheduler, err := utils.InitializeReconcileScheduler(enrollmentSvc, config.AppConfig.ReconcileSchedule)
	if err != nil {
		log.Fatalf("Invalid RECONCILE_SCHEDULE %q: %v", config.AppConfig.ReconcileSchedule, err)
	}
	defer scheduler.Stop()

	app := routers.NewApp(config.AppConfig, routers.Deps{
		DB:           db,
		Enrollment:   enrollmentSvc,
		Appointments: appointmentSvc,
		Generator:    utils.NewGeminiClient(config.AppConfig),
		AccessLog:    true,
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
